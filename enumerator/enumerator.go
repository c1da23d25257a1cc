// Package enumerator provides read-only, multi-account, multi-region
// enumeration of AWS resources for security auditing tooling. Each query
// resolves credentials for a named account, opens one client per available
// region, issues a single listing call per region, and returns the flattened
// results. Failures are all-or-nothing: any region or account failure aborts
// the whole call with no partial results.
package enumerator

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jfalken/aws-enumeration-lib/config"
)

// Credentials is a transient access key pair resolved from the configuration.
// It is derived per call and never cached.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

// Enumerator answers resource listing queries over the configured accounts.
// It holds no state between calls.
type Enumerator struct {
	cfg     *config.Config
	clients ClientFactory
	logger  zerolog.Logger
	metrics *Metrics
	workers int
}

// Option configures an Enumerator.
type Option func(*Enumerator)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Enumerator) { e.logger = logger }
}

// WithClientFactory replaces the AWS client factory, mainly for tests.
func WithClientFactory(factory ClientFactory) Option {
	return func(e *Enumerator) { e.clients = factory }
}

// WithParallelism bounds concurrent per-region listing calls. Values below 2
// keep the default strictly sequential fan-out. Result order and the
// all-or-nothing failure policy are identical in both modes.
func WithParallelism(n int) Option {
	return func(e *Enumerator) { e.workers = n }
}

// WithMetrics attaches OTEL counters for scan activity.
func WithMetrics(m *Metrics) Option {
	return func(e *Enumerator) { e.metrics = m }
}

// New creates an Enumerator over an immutable account configuration.
func New(cfg *config.Config, opts ...Option) *Enumerator {
	e := &Enumerator{
		cfg:     cfg,
		clients: NewClientFactory(),
		logger:  zerolog.Nop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Accounts returns the configured accounts in their original order.
func (e *Enumerator) Accounts() []config.Account {
	return e.cfg.Accounts
}

// Credentials resolves the key pair for a named account. Matching is
// case-insensitive and the first match wins. A miss returns the domain error
// without touching AWS.
func (e *Enumerator) Credentials(name string) (Credentials, error) {
	for _, account := range e.cfg.Accounts {
		if strings.EqualFold(account.Name, name) {
			return Credentials{AccessKeyID: account.Key, SecretAccessKey: account.Secret}, nil
		}
	}
	return Credentials{}, wrapErr("Credentials", msgCredentials, nil)
}

// ListInstances returns every instance in every region of the named account.
// Records are the SDK's own Instance values, returned untouched.
func (e *Enumerator) ListInstances(ctx context.Context, account string) ([]ec2types.Instance, error) {
	instances, err := fanOut(ctx, e, account, e.regionInstances)
	if err != nil {
		return nil, e.fail(ctx, "ListInstances", msgInstances, err)
	}
	return instances, nil
}

// ListAllInstances returns instances for every configured account, in
// configuration order.
func (e *Enumerator) ListAllInstances(ctx context.Context) ([]ec2types.Instance, error) {
	var results []ec2types.Instance
	for _, account := range e.cfg.Accounts {
		instances, err := e.ListInstances(ctx, account.Name)
		if err != nil {
			return nil, e.fail(ctx, "ListAllInstances", msgAllInstances, err)
		}
		results = append(results, instances...)
	}
	return results, nil
}

// ListLoadBalancers returns every load balancer in every region of the named
// account.
func (e *Enumerator) ListLoadBalancers(ctx context.Context, account string) ([]elbv2types.LoadBalancer, error) {
	lbs, err := fanOut(ctx, e, account, e.regionLoadBalancers)
	if err != nil {
		return nil, e.fail(ctx, "ListLoadBalancers", msgELBs, err)
	}
	return lbs, nil
}

// ListAllLoadBalancers returns load balancers for every configured account.
func (e *Enumerator) ListAllLoadBalancers(ctx context.Context) ([]elbv2types.LoadBalancer, error) {
	var results []elbv2types.LoadBalancer
	for _, account := range e.cfg.Accounts {
		lbs, err := e.ListLoadBalancers(ctx, account.Name)
		if err != nil {
			return nil, e.fail(ctx, "ListAllLoadBalancers", msgAllELBs, err)
		}
		results = append(results, lbs...)
	}
	return results, nil
}

// ListSecurityGroups returns every security group in every region of the
// named account.
func (e *Enumerator) ListSecurityGroups(ctx context.Context, account string) ([]ec2types.SecurityGroup, error) {
	groups, err := fanOut(ctx, e, account, e.regionSecurityGroups)
	if err != nil {
		return nil, e.fail(ctx, "ListSecurityGroups", msgSecGroups, err)
	}
	return groups, nil
}

// ListAllSecurityGroups returns security groups for every configured account.
func (e *Enumerator) ListAllSecurityGroups(ctx context.Context) ([]ec2types.SecurityGroup, error) {
	var results []ec2types.SecurityGroup
	for _, account := range e.cfg.Accounts {
		groups, err := e.ListSecurityGroups(ctx, account.Name)
		if err != nil {
			return nil, e.fail(ctx, "ListAllSecurityGroups", msgAllSecGroups, err)
		}
		results = append(results, groups...)
	}
	return results, nil
}

// fanOut resolves credentials, discovers regions, runs fn once per region and
// flattens the per-region results in region order. Any failure aborts the
// whole call and discards everything accumulated so far.
func fanOut[T any](ctx context.Context, e *Enumerator, account string, fn func(ctx context.Context, creds Credentials, region string) ([]T, error)) ([]T, error) {
	creds, err := e.Credentials(account)
	if err != nil {
		return nil, err
	}

	regions, err := e.clients.Regions(ctx, creds)
	if err != nil {
		return nil, wrapErr("Regions", msgConnect, err)
	}

	if e.workers <= 1 {
		var results []T
		for _, region := range regions {
			items, err := fn(ctx, creds, region)
			if err != nil {
				return nil, err
			}
			e.observeRegion(ctx, account, region, len(items))
			results = append(results, items...)
		}
		return results, nil
	}

	// Bounded-parallel mode. Per-region slices are indexed so the flattened
	// order still follows region order.
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(e.workers)
	perRegion := make([][]T, len(regions))
	for i, region := range regions {
		i, region := i, region
		group.Go(func() error {
			items, err := fn(gctx, creds, region)
			if err != nil {
				return err
			}
			e.observeRegion(gctx, account, region, len(items))
			perRegion[i] = items
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var results []T
	for _, items := range perRegion {
		results = append(results, items...)
	}
	return results, nil
}

func (e *Enumerator) regionInstances(ctx context.Context, creds Credentials, region string) ([]ec2types.Instance, error) {
	client, err := e.clients.EC2(ctx, creds, region)
	if err != nil {
		return nil, wrapErr("EC2", msgConnect, err)
	}
	return describeInstances(ctx, client, region)
}

func describeInstances(ctx context.Context, client EC2API, region string) ([]ec2types.Instance, error) {
	output, err := client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
	if err != nil {
		return nil, fmt.Errorf("describe instances in %s: %w", region, err)
	}

	var instances []ec2types.Instance
	for _, reservation := range output.Reservations {
		instances = append(instances, reservation.Instances...)
	}
	return instances, nil
}

func (e *Enumerator) regionLoadBalancers(ctx context.Context, creds Credentials, region string) ([]elbv2types.LoadBalancer, error) {
	client, err := e.clients.ELB(ctx, creds, region)
	if err != nil {
		return nil, wrapErr("ELB", msgConnect, err)
	}

	output, err := client.DescribeLoadBalancers(ctx, &elasticloadbalancingv2.DescribeLoadBalancersInput{})
	if err != nil {
		return nil, fmt.Errorf("describe load balancers in %s: %w", region, err)
	}
	return output.LoadBalancers, nil
}

func (e *Enumerator) regionSecurityGroups(ctx context.Context, creds Credentials, region string) ([]ec2types.SecurityGroup, error) {
	client, err := e.clients.EC2(ctx, creds, region)
	if err != nil {
		return nil, wrapErr("EC2", msgConnect, err)
	}

	output, err := client.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{})
	if err != nil {
		return nil, fmt.Errorf("describe security groups in %s: %w", region, err)
	}
	return output.SecurityGroups, nil
}

func (e *Enumerator) observeRegion(ctx context.Context, account, region string, count int) {
	e.logger.Debug().
		Str("account", account).
		Str("region", region).
		Int("resources", count).
		Msg("region enumerated")
	e.metrics.RecordRegionScanned(ctx, account, region)
}

// fail logs, counts and wraps a failure into the domain error for op. The
// original cause stays reachable through errors.Unwrap; Error() reports only
// the fixed message.
func (e *Enumerator) fail(ctx context.Context, op, msg string, err error) error {
	e.logger.Error().Str("op", op).Err(err).Msg(msg)
	e.metrics.RecordFailure(ctx, op)
	return wrapErr(op, msg, err)
}
