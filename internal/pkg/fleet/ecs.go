package fleet

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/aws/aws-sdk-go/service/ecs/ecsiface"

	"github.com/getgantry/gantry/config"
	"github.com/getgantry/gantry/pkg/log"
)

var ErrNoTaskStarted = errors.New("no task was started")

type ECS struct {
	svc ecsiface.ECSAPI
	cfg config.FleetConfiguration
}

func NewECS(cfg config.FleetConfiguration) (*ECS, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
	})
	if err != nil {
		log.WithError(err).Error("failed to create aws session")
		return nil, err
	}

	return &ECS{svc: ecs.New(sess), cfg: cfg}, nil
}

func (e *ECS) Occupancy(ctx context.Context) (Occupancy, error) {
	var o Occupancy

	running, err := e.listTasks(ctx, "RUNNING")
	if err != nil {
		return o, err
	}
	o.Running = running

	pending, err := e.listTasks(ctx, "PENDING")
	if err != nil {
		return o, err
	}
	o.Pending = pending

	return o, nil
}

func (e *ECS) listTasks(ctx context.Context, desiredStatus string) (int, error) {
	out, err := e.svc.ListTasksWithContext(ctx, &ecs.ListTasksInput{
		Cluster:       aws.String(e.cfg.Cluster),
		Family:        aws.String(e.cfg.TaskDefinition),
		DesiredStatus: aws.String(desiredStatus),
	})
	if err != nil {
		return 0, err
	}

	return len(out.TaskArns), nil
}

func (e *ECS) Launch(ctx context.Context, req *LaunchRequest) (string, error) {
	vpc := &ecs.AwsVpcConfiguration{
		Subnets:        aws.StringSlice(e.cfg.Subnets()),
		AssignPublicIp: aws.String(e.cfg.AssignPublicIP),
	}

	if groups := e.cfg.SecurityGroups(); len(groups) > 0 {
		vpc.SecurityGroups = aws.StringSlice(groups)
	}

	env := []*ecs.KeyValuePair{
		{Name: aws.String("GH_OWNER"), Value: aws.String(req.Owner)},
		{Name: aws.String("GH_REPO"), Value: aws.String(req.Repo)},
		{Name: aws.String("GITHUB_TOKEN"), Value: aws.String(req.Token)},
		{Name: aws.String("RUNNER_TRIGGER"), Value: aws.String(req.Trigger)},
	}

	out, err := e.svc.RunTaskWithContext(ctx, &ecs.RunTaskInput{
		Cluster:        aws.String(e.cfg.Cluster),
		TaskDefinition: aws.String(e.cfg.TaskDefinition),
		LaunchType:     aws.String(e.cfg.LaunchType),
		NetworkConfiguration: &ecs.NetworkConfiguration{
			AwsvpcConfiguration: vpc,
		},
		Overrides: &ecs.TaskOverride{
			ContainerOverrides: []*ecs.ContainerOverride{
				{
					Name:        aws.String(e.cfg.ContainerName),
					Environment: env,
				},
			},
		},
	})
	if err != nil {
		return "", err
	}

	if len(out.Tasks) == 0 || out.Tasks[0].TaskArn == nil {
		return "", ErrNoTaskStarted
	}

	return *out.Tasks[0].TaskArn, nil
}
