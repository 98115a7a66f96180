// Package user contains the User aggregate root and the Role enum shared by
// authentication and authorization.
package user
