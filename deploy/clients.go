// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deploy

import (
	"context"
	"fmt"

	"github.com/Azure/aosmlib/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	armhybridnetwork "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/hybridnetwork/armhybridnetwork/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// ResourceGroupsAPI is the subset of the resource groups client used by the
// pre-deployer.
type ResourceGroupsAPI interface {
	CheckExistence(ctx context.Context, resourceGroupName string) (bool, error)
	CreateOrUpdate(ctx context.Context, resourceGroupName string, parameters armresources.ResourceGroup) (armresources.ResourceGroup, error)
	Get(ctx context.Context, resourceGroupName string) (armresources.ResourceGroup, error)
}

// ResourcesAPI lists the resources deployed in a resource group.
type ResourcesAPI interface {
	ListNamesByResourceGroup(ctx context.Context, resourceGroupName string) ([]string, error)
}

// PublishersAPI is the subset of the publishers client used by the
// pre-deployer. CreateOrUpdate blocks until the operation reaches a terminal
// provisioning state.
type PublishersAPI interface {
	Get(ctx context.Context, resourceGroupName, publisherName string) (armhybridnetwork.Publisher, error)
	CreateOrUpdate(ctx context.Context, resourceGroupName, publisherName string, parameters armhybridnetwork.Publisher) (armhybridnetwork.Publisher, error)
}

// ArtifactStoresAPI is the subset of the artifact stores client used by the
// pre-deployer. CreateOrUpdate blocks until the operation reaches a terminal
// provisioning state.
type ArtifactStoresAPI interface {
	Get(ctx context.Context, resourceGroupName, publisherName, artifactStoreName string) (armhybridnetwork.ArtifactStore, error)
	CreateOrUpdate(ctx context.Context, resourceGroupName, publisherName, artifactStoreName string, parameters armhybridnetwork.ArtifactStore) (armhybridnetwork.ArtifactStore, error)
}

// DefinitionGroupsAPI is the subset of the network function definition groups
// client used by the pre-deployer. CreateOrUpdate blocks until the operation
// reaches a terminal provisioning state.
type DefinitionGroupsAPI interface {
	Get(ctx context.Context, resourceGroupName, publisherName, groupName string) (armhybridnetwork.NetworkFunctionDefinitionGroup, error)
	CreateOrUpdate(ctx context.Context, resourceGroupName, publisherName, groupName string, parameters armhybridnetwork.NetworkFunctionDefinitionGroup) (armhybridnetwork.NetworkFunctionDefinitionGroup, error)
}

// DesignGroupsAPI is the subset of the network service design groups client
// used by the pre-deployer. CreateOrUpdate blocks until the operation reaches
// a terminal provisioning state.
type DesignGroupsAPI interface {
	Get(ctx context.Context, resourceGroupName, publisherName, groupName string) (armhybridnetwork.NetworkServiceDesignGroup, error)
	CreateOrUpdate(ctx context.Context, resourceGroupName, publisherName, groupName string, parameters armhybridnetwork.NetworkServiceDesignGroup) (armhybridnetwork.NetworkServiceDesignGroup, error)
}

// ArtifactManifestsAPI is the subset of the artifact manifests client used by
// the pre-deployer.
type ArtifactManifestsAPI interface {
	Get(ctx context.Context, resourceGroupName, publisherName, artifactStoreName, artifactManifestName string) (armhybridnetwork.ArtifactManifest, error)
}

// APIClients aggregates the clients needed by the pre-deployer.
// Use NewAPIClients to create an instance backed by the Azure SDK.
type APIClients struct {
	ResourceGroups    ResourceGroupsAPI
	Resources         ResourcesAPI
	Publishers        PublishersAPI
	ArtifactStores    ArtifactStoresAPI
	DefinitionGroups  DefinitionGroupsAPI
	DesignGroups      DesignGroupsAPI
	ArtifactManifests ArtifactManifestsAPI
}

// NewAPIClients creates the SDK backed clients for the given subscription.
func NewAPIClients(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*APIClients, error) {
	rgClient, err := armresources.NewResourceGroupsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("deploy: error creating resource groups client: %w", err)
	}
	resClient, err := armresources.NewClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("deploy: error creating resources client: %w", err)
	}
	cf, err := armhybridnetwork.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("deploy: error creating hybrid network client factory: %w", err)
	}
	return &APIClients{
		ResourceGroups:    &resourceGroupsClient{client: rgClient},
		Resources:         &resourcesClient{client: resClient},
		Publishers:        &publishersClient{client: cf.NewPublishersClient()},
		ArtifactStores:    &artifactStoresClient{client: cf.NewArtifactStoresClient()},
		DefinitionGroups:  &definitionGroupsClient{client: cf.NewNetworkFunctionDefinitionGroupsClient()},
		DesignGroups:      &designGroupsClient{client: cf.NewNetworkServiceDesignGroupsClient()},
		ArtifactManifests: &artifactManifestsClient{client: cf.NewArtifactManifestsClient()},
	}, nil
}

// The adapters below return SDK errors unwrapped so that callers can inspect
// the underlying *azcore.ResponseError.

type resourceGroupsClient struct {
	client *armresources.ResourceGroupsClient
}

func (c *resourceGroupsClient) CheckExistence(ctx context.Context, resourceGroupName string) (bool, error) {
	resp, err := c.client.CheckExistence(ctx, resourceGroupName, nil)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (c *resourceGroupsClient) CreateOrUpdate(ctx context.Context, resourceGroupName string, parameters armresources.ResourceGroup) (armresources.ResourceGroup, error) {
	resp, err := c.client.CreateOrUpdate(ctx, resourceGroupName, parameters, nil)
	if err != nil {
		return armresources.ResourceGroup{}, err
	}
	return resp.ResourceGroup, nil
}

func (c *resourceGroupsClient) Get(ctx context.Context, resourceGroupName string) (armresources.ResourceGroup, error) {
	resp, err := c.client.Get(ctx, resourceGroupName, nil)
	if err != nil {
		return armresources.ResourceGroup{}, err
	}
	return resp.ResourceGroup, nil
}

type resourcesClient struct {
	client *armresources.Client
}

func (c *resourcesClient) ListNamesByResourceGroup(ctx context.Context, resourceGroupName string) ([]string, error) {
	pager := c.client.NewListByResourceGroupPager(resourceGroupName, nil)
	names := make([]string, 0)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, res := range page.Value {
			names = append(names, to.ValOrZero(res.Name))
		}
	}
	return names, nil
}

type publishersClient struct {
	client *armhybridnetwork.PublishersClient
}

func (c *publishersClient) Get(ctx context.Context, resourceGroupName, publisherName string) (armhybridnetwork.Publisher, error) {
	resp, err := c.client.Get(ctx, resourceGroupName, publisherName, nil)
	if err != nil {
		return armhybridnetwork.Publisher{}, err
	}
	return resp.Publisher, nil
}

func (c *publishersClient) CreateOrUpdate(ctx context.Context, resourceGroupName, publisherName string, parameters armhybridnetwork.Publisher) (armhybridnetwork.Publisher, error) {
	poller, err := c.client.BeginCreateOrUpdate(ctx, resourceGroupName, publisherName, &armhybridnetwork.PublishersClientBeginCreateOrUpdateOptions{Parameters: &parameters})
	if err != nil {
		return armhybridnetwork.Publisher{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return armhybridnetwork.Publisher{}, err
	}
	return resp.Publisher, nil
}

type artifactStoresClient struct {
	client *armhybridnetwork.ArtifactStoresClient
}

func (c *artifactStoresClient) Get(ctx context.Context, resourceGroupName, publisherName, artifactStoreName string) (armhybridnetwork.ArtifactStore, error) {
	resp, err := c.client.Get(ctx, resourceGroupName, publisherName, artifactStoreName, nil)
	if err != nil {
		return armhybridnetwork.ArtifactStore{}, err
	}
	return resp.ArtifactStore, nil
}

func (c *artifactStoresClient) CreateOrUpdate(ctx context.Context, resourceGroupName, publisherName, artifactStoreName string, parameters armhybridnetwork.ArtifactStore) (armhybridnetwork.ArtifactStore, error) {
	poller, err := c.client.BeginCreateOrUpdate(ctx, resourceGroupName, publisherName, artifactStoreName, parameters, nil)
	if err != nil {
		return armhybridnetwork.ArtifactStore{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return armhybridnetwork.ArtifactStore{}, err
	}
	return resp.ArtifactStore, nil
}

type definitionGroupsClient struct {
	client *armhybridnetwork.NetworkFunctionDefinitionGroupsClient
}

func (c *definitionGroupsClient) Get(ctx context.Context, resourceGroupName, publisherName, groupName string) (armhybridnetwork.NetworkFunctionDefinitionGroup, error) {
	resp, err := c.client.Get(ctx, resourceGroupName, publisherName, groupName, nil)
	if err != nil {
		return armhybridnetwork.NetworkFunctionDefinitionGroup{}, err
	}
	return resp.NetworkFunctionDefinitionGroup, nil
}

func (c *definitionGroupsClient) CreateOrUpdate(ctx context.Context, resourceGroupName, publisherName, groupName string, parameters armhybridnetwork.NetworkFunctionDefinitionGroup) (armhybridnetwork.NetworkFunctionDefinitionGroup, error) {
	poller, err := c.client.BeginCreateOrUpdate(ctx, resourceGroupName, publisherName, groupName, parameters, nil)
	if err != nil {
		return armhybridnetwork.NetworkFunctionDefinitionGroup{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return armhybridnetwork.NetworkFunctionDefinitionGroup{}, err
	}
	return resp.NetworkFunctionDefinitionGroup, nil
}

type designGroupsClient struct {
	client *armhybridnetwork.NetworkServiceDesignGroupsClient
}

func (c *designGroupsClient) Get(ctx context.Context, resourceGroupName, publisherName, groupName string) (armhybridnetwork.NetworkServiceDesignGroup, error) {
	resp, err := c.client.Get(ctx, resourceGroupName, publisherName, groupName, nil)
	if err != nil {
		return armhybridnetwork.NetworkServiceDesignGroup{}, err
	}
	return resp.NetworkServiceDesignGroup, nil
}

func (c *designGroupsClient) CreateOrUpdate(ctx context.Context, resourceGroupName, publisherName, groupName string, parameters armhybridnetwork.NetworkServiceDesignGroup) (armhybridnetwork.NetworkServiceDesignGroup, error) {
	poller, err := c.client.BeginCreateOrUpdate(ctx, resourceGroupName, publisherName, groupName, parameters, nil)
	if err != nil {
		return armhybridnetwork.NetworkServiceDesignGroup{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return armhybridnetwork.NetworkServiceDesignGroup{}, err
	}
	return resp.NetworkServiceDesignGroup, nil
}

type artifactManifestsClient struct {
	client *armhybridnetwork.ArtifactManifestsClient
}

func (c *artifactManifestsClient) Get(ctx context.Context, resourceGroupName, publisherName, artifactStoreName, artifactManifestName string) (armhybridnetwork.ArtifactManifest, error) {
	resp, err := c.client.Get(ctx, resourceGroupName, publisherName, artifactStoreName, artifactManifestName, nil)
	if err != nil {
		return armhybridnetwork.ArtifactManifest{}, err
	}
	return resp.ArtifactManifest, nil
}
