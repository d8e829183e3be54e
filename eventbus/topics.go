package eventbus

// 전역 토픽 선언: 기능별 기본 토픽 이름을 한 곳에서 관리합니다.
const (
	TopicAdminActivity = "blogdeck.admin.activity"
)

// Activity event types published by the admin services.
const (
	EventPostPublished   = "post.published"
	EventPostUnpublished = "post.unpublished"
	EventPostFeatured    = "post.featured"
	EventPostDeleted     = "post.deleted"
	EventCategoryDeleted = "category.deleted"
	EventCommentApproved = "comment.approved"
	EventCommentSpammed  = "comment.spammed"
	EventCommentDeleted  = "comment.deleted"
	EventUserActivated   = "user.activated"
	EventUserDeactivated = "user.deactivated"
	EventUserDeleted     = "user.deleted"
	EventNewsImported    = "news.imported"
)
