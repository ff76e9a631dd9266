package controller

import (
	"nurvo_backend/internal/model"
	"nurvo_backend/internal/service"
	"nurvo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		AuthService: authService,
	}
}

// SignupRequest defines model for registration
// swagger:model SignupRequest
type SignupRequest struct {
	ID          string `json:"id" binding:"required,max=50"`
	Password    string `json:"password" binding:"required,max=72"`
	Name        string `json:"name" binding:"max=100"`
	Nickname    string `json:"nickname" binding:"max=100"`
	PhoneNumber string `json:"phone_number" binding:"max=30"`
}

// Signup godoc
// @Summary Register a new user
// @Description Creates an account with a caller-chosen login id
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param   body body SignupRequest true "Account information"
// @Success 201 {object} util.Response{data=object} "Created"
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 409 {object} util.Response "Id already registered"
// @Failure 500 {object} util.Response "Internal server error"
// @Router /api/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		ID:          req.ID,
		Name:        req.Name,
		Nickname:    req.Nickname,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	}
	if err := c.AuthService.Register(ctx.Request.Context(), user); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// swagger:model LoginRequest
type LoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Verifies the credentials and returns a JWT
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=object} "Token"
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 401 {object} util.Response "Invalid credentials"
// @Router /api/auth [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(ctx.Request.Context(), req.ID, req.Password)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}
