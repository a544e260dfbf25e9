package model

type ContextKey string

const (
	// UserIDKey には認証層が解決した不透明なユーザーID (string) が入ります。
	UserIDKey ContextKey = "userID"
)
