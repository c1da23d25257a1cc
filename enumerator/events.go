package enumerator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// completedMarker is the literal substring AWS prefixes onto descriptions of
// finished scheduled events.
const completedMarker = "[Completed]"

// MaintenanceEvent is a flattened view of one scheduled instance event. One
// record is emitted per event, so an instance with several pending events
// appears several times. Tags is nil when the instance listing of the same
// account/region batch contained no instance with a matching id; that is the
// "instance not found" condition, distinct from an instance with no tags.
type MaintenanceEvent struct {
	InstanceID  string            `json:"instance_id"`
	Completed   bool              `json:"completed"`
	EventCode   string            `json:"event_code"`
	Description string            `json:"descript"`
	NotBefore   *time.Time        `json:"time_nb4"`
	NotAfter    *time.Time        `json:"time_nafter"`
	Tags        map[string]string `json:"tags,omitempty"`
	Account     string            `json:"account"`
	Region      string            `json:"region"`
}

// ListMaintenanceEvents returns one record per scheduled event on every
// instance with at least one pending event, across all regions of the named
// account. There is no all-accounts variant.
func (e *Enumerator) ListMaintenanceEvents(ctx context.Context, account string) ([]MaintenanceEvent, error) {
	events, err := fanOut(ctx, e, account, func(ctx context.Context, creds Credentials, region string) ([]MaintenanceEvent, error) {
		return e.regionMaintenanceEvents(ctx, creds, account, region)
	})
	if err != nil {
		return nil, e.fail(ctx, "ListMaintenanceEvents", msgEvents, err)
	}
	e.metrics.RecordEvents(ctx, account, len(events))
	return events, nil
}

func (e *Enumerator) regionMaintenanceEvents(ctx context.Context, creds Credentials, account, region string) ([]MaintenanceEvent, error) {
	client, err := e.clients.EC2(ctx, creds, region)
	if err != nil {
		return nil, wrapErr("EC2", msgConnect, err)
	}

	status, err := client.DescribeInstanceStatus(ctx, &ec2.DescribeInstanceStatusInput{})
	if err != nil {
		return nil, wrapErr("DescribeInstanceStatus", msgInstanceStatus, err)
	}

	instances, err := describeInstances(ctx, client, region)
	if err != nil {
		return nil, fmt.Errorf("instances for event matching: %w", err)
	}

	return synthesizeEvents(account, region, status.InstanceStatuses, instances), nil
}

func synthesizeEvents(account, region string, statuses []ec2types.InstanceStatus, instances []ec2types.Instance) []MaintenanceEvent {
	var events []MaintenanceEvent
	for _, status := range statuses {
		if len(status.Events) == 0 {
			continue
		}

		id := aws.ToString(status.InstanceId)
		tags := findInstanceTags(id, instances)
		for _, event := range status.Events {
			description := aws.ToString(event.Description)
			events = append(events, MaintenanceEvent{
				InstanceID:  id,
				Completed:   strings.Contains(description, completedMarker),
				EventCode:   string(event.Code),
				Description: description,
				NotBefore:   event.NotBefore,
				NotAfter:    event.NotAfter,
				Tags:        tags,
				Account:     account,
				Region:      region,
			})
		}
	}
	return events
}

// findInstanceTags linear-scans for the first instance with a matching id and
// returns its tags as a map. A nil return means no instance matched.
func findInstanceTags(id string, instances []ec2types.Instance) map[string]string {
	for _, instance := range instances {
		if aws.ToString(instance.InstanceId) != id {
			continue
		}
		tags := make(map[string]string, len(instance.Tags))
		for _, tag := range instance.Tags {
			tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
		}
		return tags
	}
	return nil
}
