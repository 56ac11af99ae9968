package model

// Comment is embedded in a Meme's comments array. ID is assigned at creation
// time so two comments posted in the same millisecond stay distinguishable;
// Timestamp is display metadata only.
type Comment struct {
	ID        string `json:"id"        bson:"id"`
	UserID    string `json:"userId"    bson:"user_id"`
	UserName  string `json:"userName"  bson:"user_name"`
	Text      string `json:"text"      bson:"text"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"` // epoch millis
}
