package service

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrListNotFound        = errors.New("shopping list not found")
	ErrListNotOwned        = errors.New("shopping list not owned by user")
	ErrItemNotFound        = errors.New("item not found")
	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrSavedRecipeNotFound = errors.New("saved recipe not found")
	ErrInvalidSkillLevel   = errors.New("invalid skill level")
	ErrEmptyName           = errors.New("name is required")
	ErrEmptyQuery          = errors.New("query is required")
	ErrSearchFailed        = errors.New("recipe search failed")
	ErrImageTooLarge       = errors.New("image too large")
	ErrUnsupportedImage    = errors.New("unsupported image type")
	ErrStorageDisabled     = errors.New("image storage is not configured")
)
