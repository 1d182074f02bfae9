package models

import "time"

type User struct {
	UserID             string     `bson:"user_id" json:"user_id"`
	Email              string     `bson:"email" json:"email"`
	Status             UserStatus `bson:"status" json:"status"`
	ConsentRetrieved   bool       `bson:"consent_retrieved" json:"consent_retrieved"`
	ConsentRetrievedAt *time.Time `bson:"consent_retrieved_at" json:"consent_retrieved_at"`
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusGuest    UserStatus = "guest"
	UserStatusInactive UserStatus = "inactive"
	UserStatusDeleted  UserStatus = "deleted"
)
