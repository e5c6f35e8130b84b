package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest holds credentials for authenticating a student or admin.
type LoginRequest struct {
	MatricNumber string `json:"matric_number" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// UserInfo describes the authenticated account in login responses.
type UserInfo struct {
	FullName     string `json:"full_name"`
	MatricNumber string `json:"matric_number"`
	Department   string `json:"department,omitempty"`
	Level        string `json:"level,omitempty"`
	IsAdmin      bool   `json:"is_admin"`
}

// LoginResponse returns the issued session credential and account info.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// JWTClaims is the access token payload. The matric number doubles as the
// subject; IsAdmin gates the admin route group.
type JWTClaims struct {
	MatricNumber string `json:"matric_number"`
	FullName     string `json:"full_name"`
	IsAdmin      bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// RegisterStudentRequest is the multipart signup payload (photo handled
// separately by the handler).
type RegisterStudentRequest struct {
	FullName     string `form:"full_name" validate:"required"`
	MatricNumber string `form:"matric_number" validate:"required"`
	Department   string `form:"department" validate:"required"`
	Level        string `form:"level" validate:"required"`
	Password     string `form:"password" validate:"required"`
	Email        string `form:"email" validate:"omitempty,email"`
	Phone        string `form:"phone"`
}

// CreateAdminRequest is the unauthenticated admin bootstrap payload.
type CreateAdminRequest struct {
	FullName     string `json:"full_name" validate:"required"`
	MatricNumber string `json:"matric_number" validate:"required"`
	Password     string `json:"password" validate:"required"`
}
