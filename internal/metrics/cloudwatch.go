package metrics

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/mozilla-it/heroku-audit/internal/models"
)

// CloudWatchAPI defines the CloudWatch client interface used for metrics.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Emitter sends audit metrics to CloudWatch.
type Emitter struct {
	client    CloudWatchAPI
	namespace string
}

// NewEmitter creates a CloudWatch metrics emitter.
func NewEmitter(ctx context.Context, region string, namespace string) (*Emitter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &Emitter{
		client:    cloudwatch.NewFromConfig(cfg),
		namespace: namespace,
	}, nil
}

// EmitAudit publishes membership audit counters to CloudWatch.
func (e *Emitter) EmitAudit(ctx context.Context, summary models.AuditSummary) error {
	metrics := []types.MetricDatum{
		metricDatum("MembersTotal", summary.MembersTotal),
		metricDatum("NeedsAction", summary.NeedsAction),
		metricDatum("Staff", summary.Staff),
		metricDatum("Service", summary.Service),
		metricDatum("Community", summary.Community),
		metricDatum("Unknown", summary.Unknown),
	}

	_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(e.namespace),
		MetricData: metrics,
	})
	return err
}

// EmitRevocations publishes revocation batch counters to CloudWatch.
func (e *Emitter) EmitRevocations(ctx context.Context, summary models.RevokeSummary) error {
	metrics := []types.MetricDatum{
		metricDatum("RevocationsRequested", summary.Requested),
		metricDatum("Revoked", summary.Revoked),
		metricDatum("RevokeNotMembers", summary.NotMembers),
		metricDatum("RevokeFailed", summary.Failed),
	}

	_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(e.namespace),
		MetricData: metrics,
	})
	return err
}

func metricDatum(name string, value int) types.MetricDatum {
	return types.MetricDatum{
		MetricName: aws.String(name),
		Unit:       types.StandardUnitCount,
		Value:      aws.Float64(float64(value)),
	}
}
