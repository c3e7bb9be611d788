package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/spotifyexp/internal/models"
	"github.com/desertthunder/spotifyexp/internal/shared"
	"golang.org/x/oauth2"
)

// oauthConfig describes the Spotify accounts service for the refresh grant.
// Client credentials go in the Authorization header as HTTP basic auth.
func (c *Client) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.accountsURL + "/authorize",
			TokenURL:  c.accountsURL + "/api/token",
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

// RefreshToken exchanges the configured refresh token for a new access token.
//
// When Spotify does not rotate the refresh token, the current one is returned unchanged.
func (c *Client) RefreshToken(ctx context.Context) (*models.TokenResponse, error) {
	if c.config.RefreshToken == "" {
		return nil, fmt.Errorf("%w: %s is empty", shared.ErrMissingConfig, shared.EnvRefreshToken)
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	source := c.oauthConfig().TokenSource(ctx, &oauth2.Token{RefreshToken: c.config.RefreshToken})

	c.logger.Debug("refreshing access token", "url", c.accountsURL+"/api/token")

	token, err := source.Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, fmt.Errorf("%w: status %d: %s", shared.ErrRefreshFailed, retrieveErr.Response.StatusCode, string(retrieveErr.Body))
		}
		return nil, fmt.Errorf("%w: %w", shared.ErrRefreshFailed, err)
	}

	response := &models.TokenResponse{
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
	if scope, ok := token.Extra("scope").(string); ok {
		response.Scope = scope
	}
	if response.RefreshToken == "" {
		response.RefreshToken = c.config.RefreshToken
	}

	return response, nil
}
