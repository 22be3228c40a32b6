package models

// EnvironmentRights pairs a user with the rights they hold on the queried
// environment.
type EnvironmentRights struct {
	User   string
	Rights Rights
}

// EnvironmentInfo describes a single environment: every user that holds
// rights on it and their level.
type EnvironmentInfo struct {
	Rights []EnvironmentRights
}

// UserRights pairs an environment with the rights the queried user holds
// on it.
type UserRights struct {
	Environment string
	Rights      Rights
}

// UserInfo describes a single user: every environment they hold rights on
// and their level.
type UserInfo struct {
	Permissions []UserRights
}
