package domain

import "errors"

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("incorrect email or password")
var ErrUserNotFound = errors.New("user not found")
var ErrPostNotFound = errors.New("post not found")
var ErrTokenExpired = errors.New("token has expired")
var ErrTokenMalformed = errors.New("token is invalid")
