package oci

import (
	"fmt"
	"strings"

	"github.com/heatwave-cli/heatwaved/pkg/models"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/identity"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"
)

// Client bundles the SDK clients used by the test and lakehouse commands,
// built from the config file saved under .heatwaved/.oci/.
type Client struct {
	provider common.ConfigurationProvider
	identity identity.IdentityClient
}

func NewClient(cfg *models.OCIConfig) (*Client, error) {
	profile := cfg.Profile
	if profile == "" {
		profile = "DEFAULT"
	}

	provider := common.CustomProfileConfigProvider(cfg.ConfigPath, profile)

	identityClient, err := identity.NewIdentityClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}

	return &Client{
		provider: provider,
		identity: identityClient,
	}, nil
}

// Validate checks that every parameter the SDK needs is present in the
// config file.
func (c *Client) Validate() error {
	if _, err := c.provider.TenancyOCID(); err != nil {
		return fmt.Errorf("missing tenancy: %w", err)
	}
	if _, err := c.provider.UserOCID(); err != nil {
		return fmt.Errorf("missing user: %w", err)
	}
	if _, err := c.provider.KeyFingerprint(); err != nil {
		return fmt.Errorf("missing fingerprint: %w", err)
	}
	if _, err := c.provider.Region(); err != nil {
		return fmt.Errorf("missing region: %w", err)
	}
	if _, err := c.provider.PrivateRSAKey(); err != nil {
		return fmt.Errorf("private key unavailable: %w", err)
	}
	return nil
}

// Region returns the configured region, or "Not specified".
func (c *Client) Region() string {
	region, err := c.provider.Region()
	if err != nil || region == "" {
		return "Not specified"
	}
	return region
}

func (c *Client) TenancyID() (string, error) {
	return c.provider.TenancyOCID()
}

func (c *Client) UserID() (string, error) {
	return c.provider.UserOCID()
}

func (c *Client) newObjectStorageClient() (objectstorage.ObjectStorageClient, error) {
	return objectstorage.NewObjectStorageClientWithConfigurationProvider(c.provider)
}

// ServiceMessage unwraps the human-readable message from an OCI service
// error.
func ServiceMessage(err error) string {
	if serviceErr, ok := common.IsServiceError(err); ok {
		return serviceErr.GetMessage()
	}
	return err.Error()
}

// IsAlreadyExists reports whether err is the 409 the identity service
// returns for duplicate dynamic groups and policies.
func IsAlreadyExists(err error) bool {
	if serviceErr, ok := common.IsServiceError(err); ok {
		if serviceErr.GetHTTPStatusCode() == 409 {
			return true
		}
		return strings.Contains(strings.ToLower(serviceErr.GetMessage()), "already exists")
	}
	return false
}
