package model

import "encoding/gob"

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
}

func NewSuccessNotification(title, message string) Notification {
	return Notification{Kind: NotificationSuccess, Title: title, Message: message}
}

func NewErrorNotification(title, message string) Notification {
	return Notification{Kind: NotificationError, Title: title, Message: message}
}

func init() {
	// Notifications are carried across redirects in cookie sessions
	gob.Register(Notification{})
}
