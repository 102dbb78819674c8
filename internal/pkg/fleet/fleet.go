package fleet

import "context"

// Occupancy is the running+pending task count for the workload family.
type Occupancy struct {
	Running int
	Pending int
}

func (o Occupancy) Total() int {
	return o.Running + o.Pending
}

// LaunchRequest carries the environment injected into the runner task.
type LaunchRequest struct {
	Owner   string
	Repo    string
	Token   string
	Trigger string
}

// Client is the controller's contract with the compute control plane:
// list occupancy and launch with environment, nothing more.
type Client interface {
	Occupancy(ctx context.Context) (Occupancy, error)
	Launch(ctx context.Context, req *LaunchRequest) (string, error)
}
