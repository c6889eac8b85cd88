// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deploy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/Azure/aosmlib/config"
	"github.com/Azure/aosmlib/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	armhybridnetwork "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/hybridnetwork/armhybridnetwork/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/brunoga/deep"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultParallelism = 4 // default number of parallel requests to make to Azure APIs

	// deploymentIdTagKey is the tag added to resource groups created by the
	// pre-deployer, so that they can be attributed to a publisher later.
	deploymentIdTagKey = "AosmLibDeploymentId"
)

// nfConfiguration is implemented by the network function configuration
// variants (VNF and CNF), which share a definition group.
type nfConfiguration interface {
	config.Configuration
	NFDGroupName() string
}

// PreDeployer checks for and creates the resources required before a network
// function definition or network service design can be published.
// Existence alone is checked: properties of an existing resource are not
// reconciled against the requested ones.
type PreDeployer struct {
	clients     *APIClients
	cfg         config.Configuration
	progress    io.Writer
	parallelism int
}

// PreDeployerOption configures a PreDeployer.
type PreDeployerOption func(*PreDeployer)

// WithProgressWriter directs the pre-deployer's informational messages to w
// instead of stdout.
func WithProgressWriter(w io.Writer) PreDeployerOption {
	return func(d *PreDeployer) {
		d.progress = w
	}
}

// WithParallelism sets the number of parallel requests made to Azure APIs.
func WithParallelism(n int) PreDeployerOption {
	return func(d *PreDeployer) {
		d.parallelism = n
	}
}

// NewPreDeployer returns a new PreDeployer for the supplied clients and
// configuration. The configuration is deep copied so that it stays read-only
// for the lifetime of the pre-deployer.
func NewPreDeployer(clients *APIClients, cfg config.Configuration, opts ...PreDeployerOption) (*PreDeployer, error) {
	if clients == nil {
		return nil, errors.New("deploy: api clients not set")
	}
	cfgCopy, err := deep.Copy(cfg)
	if err != nil {
		return nil, fmt.Errorf("deploy: error copying configuration: %w", err)
	}
	d := &PreDeployer{
		clients:     clients,
		cfg:         cfgCopy,
		progress:    os.Stdout,
		parallelism: defaultParallelism,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// EnsureConfigResourcesExist ensures that all resources required by the
// configuration exist: the resource group, the publisher, the artifact
// store(s) and the definition or design group.
func (d *PreDeployer) EnsureConfigResourcesExist(ctx context.Context) error {
	if err := d.EnsureConfigResourceGroupExists(ctx); err != nil {
		return err
	}
	if err := d.EnsureConfigPublisherExists(ctx); err != nil {
		return err
	}
	if err := d.EnsureConfigACRArtifactStoreExists(ctx); err != nil {
		return err
	}
	switch d.cfg.(type) {
	case *config.VNFConfiguration:
		if err := d.EnsureConfigSAArtifactStoreExists(ctx); err != nil {
			return err
		}
		if err := d.EnsureConfigDefinitionGroupExists(ctx); err != nil {
			return err
		}
	case *config.CNFConfiguration:
		if err := d.EnsureConfigDefinitionGroupExists(ctx); err != nil {
			return err
		}
	case *config.NSConfiguration:
		if err := d.EnsureConfigDesignGroupExists(ctx); err != nil {
			return err
		}
	}
	return nil
}

// EnsureResourceGroupExists checks whether the resource group exists on the
// subscription and creates it if not.
func (d *PreDeployer) EnsureResourceGroupExists(ctx context.Context, resourceGroupName string) error {
	exists, err := d.clients.ResourceGroups.CheckExistence(ctx, resourceGroupName)
	if err != nil {
		return fmt.Errorf("deploy: error checking existence of resource group %s: %w", resourceGroupName, err)
	}
	if exists {
		d.printf("Resource group %s exists.\n", resourceGroupName)
		return nil
	}
	d.printf("Creating resource group %s.\n", resourceGroupName)
	params := armresources.ResourceGroup{
		Location: to.Ptr(d.cfg.PublisherLocation()),
		Tags: map[string]*string{
			deploymentIdTagKey: to.Ptr(d.deploymentId()),
		},
	}
	if _, err := d.clients.ResourceGroups.CreateOrUpdate(ctx, resourceGroupName, params); err != nil {
		return fmt.Errorf("deploy: error creating resource group %s: %w", resourceGroupName, err)
	}
	return nil
}

// EnsureConfigResourceGroupExists ensures that the publisher resource group
// from the configuration exists.
func (d *PreDeployer) EnsureConfigResourceGroupExists(ctx context.Context) error {
	return d.EnsureResourceGroupExists(ctx, d.cfg.PublisherResourceGroupName())
}

// EnsurePublisherExists checks whether the publisher exists in the resource
// group and creates it if not. The publisher is created with private scope.
func (d *PreDeployer) EnsurePublisherExists(ctx context.Context, resourceGroupName, publisherName, location string) error {
	pub, err := d.clients.Publishers.Get(ctx, resourceGroupName, publisherName)
	if err == nil {
		d.printf("Publisher %s exists in resource group %s.\n", to.ValOrZero(pub.Name), resourceGroupName)
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("deploy: error checking existence of publisher %s: %w", publisherName, err)
	}
	d.printf("Creating publisher %s in resource group %s.\n", publisherName, resourceGroupName)
	created, err := d.clients.Publishers.CreateOrUpdate(ctx, resourceGroupName, publisherName, armhybridnetwork.Publisher{
		Location: to.Ptr(location),
		Properties: &armhybridnetwork.PublisherPropertiesFormat{
			Scope: to.Ptr(armhybridnetwork.PublisherScopePrivate),
		},
	})
	if err != nil {
		return fmt.Errorf("deploy: error creating publisher %s: %w", publisherName, err)
	}
	var state *armhybridnetwork.ProvisioningState
	if created.Properties != nil {
		state = created.Properties.ProvisioningState
	}
	return checkProvisioningState("publisher", publisherName, state)
}

// EnsureConfigPublisherExists ensures that the publisher from the
// configuration exists.
func (d *PreDeployer) EnsureConfigPublisherExists(ctx context.Context) error {
	return d.EnsurePublisherExists(ctx,
		d.cfg.PublisherResourceGroupName(),
		d.cfg.PublisherName(),
		d.cfg.PublisherLocation())
}

// EnsureArtifactStoreExists checks whether the artifact store exists under the
// publisher and creates it if not.
func (d *PreDeployer) EnsureArtifactStoreExists(
	ctx context.Context,
	resourceGroupName, publisherName, artifactStoreName string,
	storeType armhybridnetwork.ArtifactStoreType,
	location string,
) error {
	_, err := d.clients.ArtifactStores.Get(ctx, resourceGroupName, publisherName, artifactStoreName)
	if err == nil {
		d.printf("Artifact store %s exists in resource group %s.\n", artifactStoreName, resourceGroupName)
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("deploy: error checking existence of artifact store %s: %w", artifactStoreName, err)
	}
	d.printf("Creating artifact store %s of type %s.\n", artifactStoreName, storeType)
	created, err := d.clients.ArtifactStores.CreateOrUpdate(ctx, resourceGroupName, publisherName, artifactStoreName,
		armhybridnetwork.ArtifactStore{
			Location: to.Ptr(location),
			Properties: &armhybridnetwork.ArtifactStorePropertiesFormat{
				StoreType: to.Ptr(storeType),
			},
		})
	if err != nil {
		return fmt.Errorf("deploy: error creating artifact store %s: %w", artifactStoreName, err)
	}
	var state *armhybridnetwork.ProvisioningState
	if created.Properties != nil {
		state = created.Properties.ProvisioningState
	}
	return checkProvisioningState("artifact store", artifactStoreName, state)
}

// EnsureConfigACRArtifactStoreExists ensures that the container registry
// artifact store from the configuration exists.
func (d *PreDeployer) EnsureConfigACRArtifactStoreExists(ctx context.Context) error {
	return d.EnsureArtifactStoreExists(ctx,
		d.cfg.PublisherResourceGroupName(),
		d.cfg.PublisherName(),
		d.cfg.ACRArtifactStoreName(),
		armhybridnetwork.ArtifactStoreTypeAzureContainerRegistry,
		d.cfg.PublisherLocation())
}

// EnsureConfigSAArtifactStoreExists ensures that the storage account artifact
// store from the configuration exists. Only VNF configurations carry a
// storage account artifact store.
func (d *PreDeployer) EnsureConfigSAArtifactStoreExists(ctx context.Context) error {
	vnf, ok := d.cfg.(*config.VNFConfiguration)
	if !ok {
		return errors.New("deploy: cannot ensure the storage account artifact store exists, the configuration is not for a VNF")
	}
	return d.EnsureArtifactStoreExists(ctx,
		vnf.PublisherResourceGroupName(),
		vnf.PublisherName(),
		vnf.BlobArtifactStoreName(),
		armhybridnetwork.ArtifactStoreTypeAzureStorageAccount,
		vnf.PublisherLocation())
}

// EnsureDefinitionGroupExists checks whether the network function definition
// group exists under the publisher and creates it if not.
func (d *PreDeployer) EnsureDefinitionGroupExists(ctx context.Context, resourceGroupName, publisherName, groupName, location string) error {
	_, err := d.clients.DefinitionGroups.Get(ctx, resourceGroupName, publisherName, groupName)
	if err == nil {
		d.printf("Network function definition group %s exists in resource group %s.\n", groupName, resourceGroupName)
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("deploy: error checking existence of network function definition group %s: %w", groupName, err)
	}
	d.printf("Creating network function definition group %s.\n", groupName)
	created, err := d.clients.DefinitionGroups.CreateOrUpdate(ctx, resourceGroupName, publisherName, groupName,
		armhybridnetwork.NetworkFunctionDefinitionGroup{
			Location: to.Ptr(location),
		})
	if err != nil {
		return fmt.Errorf("deploy: error creating network function definition group %s: %w", groupName, err)
	}
	var state *armhybridnetwork.ProvisioningState
	if created.Properties != nil {
		state = created.Properties.ProvisioningState
	}
	return checkProvisioningState("network function definition group", groupName, state)
}

// EnsureConfigDefinitionGroupExists ensures that the network function
// definition group from the configuration exists.
func (d *PreDeployer) EnsureConfigDefinitionGroupExists(ctx context.Context) error {
	nf, ok := d.cfg.(nfConfiguration)
	if !ok {
		return errors.New("deploy: cannot ensure the network function definition group exists, the configuration is not for a network function")
	}
	return d.EnsureDefinitionGroupExists(ctx,
		nf.PublisherResourceGroupName(),
		nf.PublisherName(),
		nf.NFDGroupName(),
		nf.PublisherLocation())
}

// EnsureDesignGroupExists checks whether the network service design group
// exists under the publisher and creates it if not.
func (d *PreDeployer) EnsureDesignGroupExists(ctx context.Context, resourceGroupName, publisherName, groupName, location string) error {
	_, err := d.clients.DesignGroups.Get(ctx, resourceGroupName, publisherName, groupName)
	if err == nil {
		d.printf("Network service design group %s exists in resource group %s.\n", groupName, resourceGroupName)
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("deploy: error checking existence of network service design group %s: %w", groupName, err)
	}
	d.printf("Creating network service design group %s.\n", groupName)
	created, err := d.clients.DesignGroups.CreateOrUpdate(ctx, resourceGroupName, publisherName, groupName,
		armhybridnetwork.NetworkServiceDesignGroup{
			Location: to.Ptr(location),
		})
	if err != nil {
		return fmt.Errorf("deploy: error creating network service design group %s: %w", groupName, err)
	}
	var state *armhybridnetwork.ProvisioningState
	if created.Properties != nil {
		state = created.Properties.ProvisioningState
	}
	return checkProvisioningState("network service design group", groupName, state)
}

// EnsureConfigDesignGroupExists ensures that the network service design group
// from the configuration exists.
func (d *PreDeployer) EnsureConfigDesignGroupExists(ctx context.Context) error {
	nsd, ok := d.cfg.(*config.NSConfiguration)
	if !ok {
		return errors.New("deploy: cannot ensure the network service design group exists, the configuration is not for a network service design")
	}
	return d.EnsureDesignGroupExists(ctx,
		nsd.PublisherResourceGroupName(),
		nsd.PublisherName(),
		nsd.NSDGName,
		nsd.PublisherLocation())
}

// ConfigArtifactManifestsExist reports whether the artifact manifests required
// by the configuration exist. For VNF configurations both the container
// registry manifest and the storage account manifest must exist together:
// exactly one existing is a corrupt intermediate state and is returned as an
// ErrPartialManifestState rather than auto-repaired.
func (d *PreDeployer) ConfigArtifactManifestsExist(ctx context.Context) (bool, error) {
	rgName := d.cfg.PublisherResourceGroupName()
	publisherName := d.cfg.PublisherName()

	vnf, isVNF := d.cfg.(*config.VNFConfiguration)
	if !isVNF {
		return d.artifactManifestExists(ctx, rgName, publisherName, d.cfg.ACRArtifactStoreName(), d.cfg.ACRManifestName())
	}

	var acrExists, saExists bool
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(d.parallelism)
	grp.Go(func() error {
		var err error
		acrExists, err = d.artifactManifestExists(gctx, rgName, publisherName, vnf.ACRArtifactStoreName(), vnf.ACRManifestName())
		return err
	})
	grp.Go(func() error {
		var err error
		saExists, err = d.artifactManifestExists(gctx, rgName, publisherName, vnf.BlobArtifactStoreName(), vnf.SAManifestName())
		return err
	})
	if err := grp.Wait(); err != nil {
		return false, err
	}

	switch {
	case acrExists && saExists:
		return true, nil
	case acrExists:
		return false, NewErrPartialManifestState(vnf.ACRManifestName(), vnf.SAManifestName())
	case saExists:
		return false, NewErrPartialManifestState(vnf.SAManifestName(), vnf.ACRManifestName())
	}
	return false, nil
}

// artifactManifestExists reports whether a single artifact manifest exists.
func (d *PreDeployer) artifactManifestExists(ctx context.Context, resourceGroupName, publisherName, artifactStoreName, manifestName string) (bool, error) {
	_, err := d.clients.ArtifactManifests.Get(ctx, resourceGroupName, publisherName, artifactStoreName, manifestName)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("deploy: error checking existence of artifact manifest %s: %w", manifestName, err)
}

// ResourceExistsByName determines if a resource with the given name exists in
// the resource group. No checking is done as to the type.
func (d *PreDeployer) ResourceExistsByName(ctx context.Context, resourceGroupName, resourceName string) (bool, error) {
	names, err := d.clients.Resources.ListNamesByResourceGroup(ctx, resourceGroupName)
	if err != nil {
		return false, fmt.Errorf("deploy: error listing resources in resource group %s: %w", resourceGroupName, err)
	}
	return mapset.NewThreadUnsafeSet(names...).Contains(resourceName), nil
}

// deploymentId is a stable identifier for the resources created for a
// publisher, derived from the publisher identity.
func (d *PreDeployer) deploymentId() string {
	return uuidV5(d.cfg.PublisherResourceGroupName(), d.cfg.PublisherName()).String()
}

func (d *PreDeployer) printf(format string, args ...any) {
	fmt.Fprintf(d.progress, format, args...)
}

// checkProvisioningState returns an error if the terminal provisioning state
// of a completed create operation is not Succeeded.
func checkProvisioningState(resourceType, resourceName string, state *armhybridnetwork.ProvisioningState) error {
	if to.ValOrZero(state) != armhybridnetwork.ProvisioningStateSucceeded {
		return NewErrUnexpectedProvisioningState(resourceType, resourceName, string(to.ValOrZero(state)))
	}
	return nil
}

// isNotFound reports whether the error is an Azure "not found" response.
// Other response errors, e.g. authorization failures, are not masked as
// absence and must be handled by the caller.
func isNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}

// uuidV5 returns a deterministic UUID derived from the concatenation of the
// supplied strings.
func uuidV5(s ...string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.Join(s, "")))
}
