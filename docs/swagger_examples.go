// Example Swagger Annotations for the identity endpoints
// Copy these patterns when adding Swagger docs to your handlers

package docs

// ============================================
// AUTH ENDPOINTS (@Tags auth)
// ============================================

// LoginAdmin godoc
// @Summary      Admin login
// @Description  Authenticate an administrator by email and receive JWT tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginAdminRequest true "Admin credentials"
// @Success      200 {object} map[string]interface{} "Access and refresh tokens"
// @Failure      401 {object} map[string]interface{} "Incorrect password"
// @Failure      404 {object} map[string]interface{} "Admin account does not exist"
// @Router       /api/v1/auth/login/admin [post]

// LoginUser godoc
// @Summary      Doctor or patient login
// @Description  Authenticate a doctor or patient by phone number and receive JWT tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginUserRequest true "Login credentials"
// @Success      200 {object} map[string]interface{} "Access and refresh tokens"
// @Failure      401 {object} map[string]interface{} "Incorrect password"
// @Failure      403 {object} map[string]interface{} "Admin accounts must use the admin login"
// @Failure      404 {object} map[string]interface{} "Phone number not registered"
// @Router       /api/v1/auth/login [post]

// Refresh godoc
// @Summary      Refresh token pair
// @Description  Rotate the refresh token and receive a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshTokenRequest true "Refresh token"
// @Success      200 {object} map[string]interface{} "New token pair"
// @Failure      401 {object} map[string]interface{} "Refresh token invalid or expired"
// @Router       /api/v1/auth/refresh [post]

// Logout godoc
// @Summary      Logout
// @Description  Clear the stored refresh token so future refreshes fail
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]interface{} "Logged out"
// @Failure      401 {object} map[string]interface{} "Unauthorized"
// @Security     BearerAuth
// @Router       /api/v1/auth/logout [post]

// RegisterPatient godoc
// @Summary      Register a patient account
// @Description  Self-service registration for patients with their profile details
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterPatientRequest true "Patient registration details"
// @Success      201 {object} dto.ProfileResponse "Created account with profile"
// @Failure      409 {object} map[string]interface{} "Phone number already registered"
// @Failure      422 {object} map[string]interface{} "Validation error"
// @Router       /api/v1/auth/register/patient [post]

// CreateDoctor godoc
// @Summary      Create a doctor account
// @Description  Admin-only creation of a doctor account with license details
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateDoctorRequest true "Doctor account details"
// @Success      201 {object} dto.ProfileResponse "Created account with profile"
// @Failure      403 {object} map[string]interface{} "Forbidden"
// @Failure      409 {object} map[string]interface{} "Phone or license already registered"
// @Failure      422 {object} map[string]interface{} "Validation error"
// @Security     BearerAuth
// @Router       /api/v1/auth/register/doctor [post]

// Me godoc
// @Summary      Get own profile
// @Description  Get the current account with its role-specific profile
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.ProfileResponse "Account profile"
// @Failure      401 {object} map[string]interface{} "Unauthorized"
// @Security     BearerAuth
// @Router       /api/v1/auth/me [get]
