package aws_ce

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
)

const (
	DefaultRegion = "us-east-1" // Cost Explorer is served from us-east-1
)

func LoadConfig(ctx context.Context, profile string) (*awssdk.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithDefaultRegion(DefaultRegion),
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	// Test the credentials
	_, err = awsCfg.Credentials.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("invalid AWS credentials for profile %q: %w", profile, err)
	}

	return &awsCfg, nil
}

// NewClient builds a Cost Explorer client for the given shared-config
// profile. An empty profile uses the default credential chain.
func NewClient(ctx context.Context, profile string) (*costexplorer.Client, error) {
	cfg, err := LoadConfig(ctx, profile)
	if err != nil {
		return nil, err
	}
	return costexplorer.NewFromConfig(*cfg), nil
}
