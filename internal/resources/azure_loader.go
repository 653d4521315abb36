package resources

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	apperrors "go-image-classifier/internal/errors"
)

// AzureLoader reads model artifacts from an Azure blob container, for
// deployments that pull the model at startup instead of shipping it
// alongside the binary.
type AzureLoader struct {
	client    *azblob.Client
	container string
}

// NewAzureLoader creates a blob-backed artifact loader
func NewAzureLoader(accountName, accountKey, container string) (Loader, error) {
	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, apperrors.NewIOError("invalid azure credentials", err)
	}

	client, err := azblob.NewClientWithSharedKeyCredential(
		fmt.Sprintf("https://%s.blob.core.windows.net", accountName),
		credential,
		nil,
	)
	if err != nil {
		return nil, apperrors.NewIOError("failed to create azure client", err)
	}

	return &AzureLoader{client: client, container: container}, nil
}

func (l *AzureLoader) Load(ctx context.Context, name string) ([]byte, error) {
	downloadResponse, err := l.client.DownloadStream(ctx, l.container, name, nil)
	if err != nil {
		return nil, apperrors.NewIOError(fmt.Sprintf("failed to download blob %q", name), err)
	}

	retryReader := downloadResponse.Body
	defer retryReader.Close()

	data, err := io.ReadAll(retryReader)
	if err != nil {
		return nil, apperrors.NewIOError(fmt.Sprintf("failed to read blob %q", name), err)
	}
	if len(data) == 0 {
		return nil, apperrors.NewIOError(fmt.Sprintf("blob %q is empty", name), nil)
	}
	return data, nil
}
