package dto

import "main/model"

type RegisterRequest struct {
	Email            string `json:"email" binding:"required,email"`
	FullName         string `json:"full_name" binding:"required"`
	Role             string `json:"role" binding:"required,oneof=tourist authority"`
	Password         string `json:"password" binding:"required,password"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
	IDProofNumber    string `json:"id_proof_number"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned by both register and login.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}
