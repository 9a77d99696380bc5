package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrServiceNotFound = errors.New("service not found")
var ErrPostNotFound = errors.New("post not found")
var ErrRequestNotFound = errors.New("request not found")
var ErrUserNotFound = errors.New("user not found")
