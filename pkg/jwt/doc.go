// Package jwt provides JSON Web Token utilities for the Aisle API.
//
// Tokens are signed with Ed25519 ("EdDSA"). The package handles key pair
// generation, token signing, validation, and claims extraction.
//
// # Token Generation
//
// Sign tokens for authenticated users:
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "keys/jwt.pem",
//	    Issuer:         "aisle.juneandco.dev",
//	    ExpirationMins: 60,
//	})
//
//	token, err := service.Sign(jwt.Claims{
//	    Subject: user.ID,
//	    UserID:  user.ID,
//	    Email:   user.Email,
//	    Role:    user.Role,
//	})
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	userID := claims.UserID
//
// A deployment that only validates tokens can be configured with just the
// public key path.
package jwt
