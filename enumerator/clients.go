package enumerator

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
)

// defaultRegion is where region discovery itself connects.
const defaultRegion = "us-east-1"

// sdkClientFactory is the real ClientFactory backed by aws-sdk-go-v2.
type sdkClientFactory struct{}

// NewClientFactory returns a ClientFactory that opens real AWS clients using
// static credentials from the configuration.
func NewClientFactory() ClientFactory {
	return sdkClientFactory{}
}

func (sdkClientFactory) load(ctx context.Context, creds Credentials, region string) (aws.Config, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config for %s: %w", region, err)
	}
	return cfg, nil
}

func (f sdkClientFactory) Regions(ctx context.Context, creds Credentials) ([]string, error) {
	cfg, err := f.load(ctx, creds, defaultRegion)
	if err != nil {
		return nil, err
	}

	output, err := ec2.NewFromConfig(cfg).DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, fmt.Errorf("describe regions: %w", err)
	}

	regions := make([]string, 0, len(output.Regions))
	for _, region := range output.Regions {
		regions = append(regions, aws.ToString(region.RegionName))
	}
	return regions, nil
}

func (f sdkClientFactory) EC2(ctx context.Context, creds Credentials, region string) (EC2API, error) {
	cfg, err := f.load(ctx, creds, region)
	if err != nil {
		return nil, err
	}
	return ec2.NewFromConfig(cfg), nil
}

func (f sdkClientFactory) ELB(ctx context.Context, creds Credentials, region string) (ELBAPI, error) {
	cfg, err := f.load(ctx, creds, region)
	if err != nil {
		return nil, err
	}
	return elasticloadbalancingv2.NewFromConfig(cfg), nil
}
