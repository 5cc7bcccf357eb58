// Package entities contains core business entities.
package entities

// Team aggregates members under a globally unique name.
// Membership is by foreign reference: a member's TeamID equals this team's ID.
type Team struct {
	ID         int64
	Name       string
	InviteCode *string
	AdminID    int64
	Members    []User
}
