package oci

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

// MatchingRule builds the dynamic group rule that matches every MySQL DB
// system in the compartment.
func MatchingRule(compartmentID string) string {
	return fmt.Sprintf("ALL{resource.type='mysqldbsystem', resource.compartment.id = '%s'}", compartmentID)
}

// PolicyStatements builds the two statements Lakehouse needs to read
// Object Storage. When the tenancy uses identity domains the dynamic group
// reference must be domain-qualified.
func PolicyStatements(dynamicGroup, identityDomain, compartmentID string) []string {
	group := dynamicGroup
	if identityDomain != "" {
		group = fmt.Sprintf("'%s'/%s", identityDomain, dynamicGroup)
	}

	return []string{
		fmt.Sprintf("Allow dynamic-group %s to read buckets in compartment id %s", group, compartmentID),
		fmt.Sprintf("Allow dynamic-group %s to read objects in compartment id %s", group, compartmentID),
	}
}

// CreateDynamicGroup creates the dynamic group in the tenancy root (the
// only place dynamic groups can live). When it already exists the existing
// group's OCID is returned with existed=true.
func (c *Client) CreateDynamicGroup(ctx context.Context, name, matchingRule, description string) (id string, existed bool, err error) {
	tenancyID, err := c.provider.TenancyOCID()
	if err != nil {
		return "", false, err
	}

	resp, err := c.identity.CreateDynamicGroup(ctx, identity.CreateDynamicGroupRequest{
		CreateDynamicGroupDetails: identity.CreateDynamicGroupDetails{
			CompartmentId: common.String(tenancyID),
			Name:          common.String(name),
			MatchingRule:  common.String(matchingRule),
			Description:   common.String(description),
		},
	})
	if err == nil {
		if resp.DynamicGroup.Id != nil {
			id = *resp.DynamicGroup.Id
		}
		return id, false, nil
	}

	if !IsAlreadyExists(err) {
		return "", false, err
	}

	listResp, listErr := c.identity.ListDynamicGroups(ctx, identity.ListDynamicGroupsRequest{
		CompartmentId: common.String(tenancyID),
		Name:          common.String(name),
	})
	if listErr != nil || len(listResp.Items) == 0 {
		return "", true, nil
	}

	if listResp.Items[0].Id != nil {
		id = *listResp.Items[0].Id
	}
	return id, true, nil
}

// CreatePolicy creates the Lakehouse policy in the target compartment.
func (c *Client) CreatePolicy(ctx context.Context, compartmentID, name string, statements []string, description string) (id string, existed bool, err error) {
	resp, err := c.identity.CreatePolicy(ctx, identity.CreatePolicyRequest{
		CreatePolicyDetails: identity.CreatePolicyDetails{
			CompartmentId: common.String(compartmentID),
			Name:          common.String(name),
			Statements:    statements,
			Description:   common.String(description),
		},
	})
	if err == nil {
		if resp.Policy.Id != nil {
			id = *resp.Policy.Id
		}
		return id, false, nil
	}

	if IsAlreadyExists(err) {
		return "", true, nil
	}

	return "", false, err
}
