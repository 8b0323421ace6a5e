package services

import "errors"

// Sentinel errors the controllers translate to HTTP statuses.
var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrReelNotFound       = errors.New("reel not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrMenuItemMismatch   = errors.New("menu item not in this restaurant")
	ErrCommentRequired    = errors.New("comment text is required")
	ErrAuthRequired       = errors.New("authentication required")
	ErrForbidden          = errors.New("forbidden")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
