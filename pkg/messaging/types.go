package messaging

type ChangeTopic string

const (
	TopicCourseUpserted ChangeTopic = "course_upserted"
	TopicTrackUpserted  ChangeTopic = "track_upserted"
	TopicItemDeleted    ChangeTopic = "item_deleted"
)
