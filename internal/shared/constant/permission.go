// Package constant holds shared authorization object and action names used by
// the casbin enforcer across modules.
package constant

const (
	PermIdentityMgmtUsers = "identity:users"
	PermHotelGuests       = "hotel:guests"
	PermHotelPromotions   = "hotel:promotions"
	PermHotelFeedback     = "hotel:feedback"
	PermHotelBlogs        = "hotel:blogs"
	PermAuditTrail        = "audit:trail"

	PermActRead   = "read"
	PermActCreate = "create"
	PermActUpdate = "update"
	PermActDelete = "delete"
)
