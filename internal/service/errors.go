// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("name, email, password are required")
	ErrAccountExists       = errors.New("you already have an account, try to login")
	ErrWrongPassword       = errors.New("invalid email or password")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrNotAuthenticated = errors.New("please log in to get access")
	ErrTokenUserGone    = errors.New("the user belonging to this token no longer exists")
	ErrForbidden        = errors.New("you do not have permission to perform this action")

	ErrNotConversationMember = errors.New("you are not a member of this conversation")
)
