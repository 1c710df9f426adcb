package model

import "database/sql"

// Actor identifies the caller of a mutating operation. The privileged
// environment admin is configured outside the database and therefore has
// no user row to reference, so code that persists an actor id must branch
// on the kind instead of comparing sentinel values.
type Actor struct {
	Kind   ActorKind
	UserID int64 // valid only when Kind == ActorKindUser
}

// ActorKind ...
type ActorKind int

const (
	// ActorKindEnvAdmin ...
	ActorKindEnvAdmin ActorKind = 1

	// ActorKindUser ...
	ActorKindUser ActorKind = 2
)

// EnvAdmin ...
func EnvAdmin() Actor {
	return Actor{Kind: ActorKindEnvAdmin}
}

// UserActor ...
func UserActor(userID int64) Actor {
	return Actor{Kind: ActorKindUser, UserID: userID}
}

// NullUserID returns the actor's user id as a nullable foreign key,
// NULL for the environment admin.
func (a Actor) NullUserID() sql.NullInt64 {
	if a.Kind != ActorKindUser {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Valid: true, Int64: a.UserID}
}
