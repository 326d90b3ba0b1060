package oci

import (
	"context"
	"fmt"
	"time"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"
)

// Bucket is the subset of bucket data the CLI shows.
type Bucket struct {
	Name      string
	CreatedBy string
	Created   time.Time
}

// ListBuckets lists Object Storage buckets in a compartment under the
// tenancy's namespace.
func (c *Client) ListBuckets(ctx context.Context, compartmentID string) ([]Bucket, error) {
	storageClient, err := c.newObjectStorageClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	nsResp, err := storageClient.GetNamespace(ctx, objectstorage.GetNamespaceRequest{})
	if err != nil {
		return nil, err
	}
	if nsResp.Value == nil {
		return nil, fmt.Errorf("object storage namespace unavailable")
	}

	resp, err := storageClient.ListBuckets(ctx, objectstorage.ListBucketsRequest{
		NamespaceName: nsResp.Value,
		CompartmentId: common.String(compartmentID),
	})
	if err != nil {
		return nil, err
	}

	buckets := make([]Bucket, 0, len(resp.Items))
	for _, item := range resp.Items {
		bucket := Bucket{}
		if item.Name != nil {
			bucket.Name = *item.Name
		}
		if item.CreatedBy != nil {
			bucket.CreatedBy = *item.CreatedBy
		}
		if item.TimeCreated != nil {
			bucket.Created = item.TimeCreated.Time
		}
		buckets = append(buckets, bucket)
	}

	return buckets, nil
}
