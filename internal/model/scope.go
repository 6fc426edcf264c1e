package model

// Scope identifies the authenticated caller a request runs on behalf of.
type Scope struct {
	UserID   string
	Username string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
