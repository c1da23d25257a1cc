package enumerator

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
)

// EC2API defines the EC2 operations used by the enumerator.
type EC2API interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	DescribeInstanceStatus(ctx context.Context, params *ec2.DescribeInstanceStatusInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstanceStatusOutput, error)
}

// ELBAPI defines the load balancer operations used by the enumerator.
type ELBAPI interface {
	DescribeLoadBalancers(ctx context.Context, params *elasticloadbalancingv2.DescribeLoadBalancersInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DescribeLoadBalancersOutput, error)
}

// ClientFactory opens region-bound AWS clients for a credential pair. Clients
// are created per call and never pooled or reused across operations.
type ClientFactory interface {
	// Regions discovers the regions available to the credentials.
	Regions(ctx context.Context, creds Credentials) ([]string, error)
	// EC2 returns an EC2 client bound to one region.
	EC2(ctx context.Context, creds Credentials, region string) (EC2API, error)
	// ELB returns a load balancer client bound to one region.
	ELB(ctx context.Context, creds Credentials, region string) (ELBAPI, error)
}
