package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/containerd/errdefs"
	"github.com/moby/moby/client"
)

// projectLabel is the label compose stamps on every container it
// creates; the value is the project (service directory) name.
const projectLabel = "com.docker.compose.project"

// ContainerStatus describes one running or stopped container.
type ContainerStatus struct {
	Name    string
	Image   string
	State   string
	Status  string
	Project string
}

// engineLister is the slice of the Engine API the status query needs.
type engineLister interface {
	ContainerList(ctx context.Context, options client.ContainerListOptions) (client.ContainerListResult, error)
}

// newEngineClient is a factory variable so tests can supply a fake
// engine.
var newEngineClient = func() (engineLister, error) {
	return client.New(client.FromEnv)
}

// Status lists compose-managed containers. With a project name only that
// project's containers are returned; empty lists every compose project
// on the engine.
func Status(ctx context.Context, project string) ([]ContainerStatus, error) {
	c, err := newEngineClient()
	if err != nil {
		return nil, fmt.Errorf("connect to container engine: %w", err)
	}

	f := make(client.Filters)
	if project != "" {
		f.Add("label", projectLabel+"="+project)
	} else {
		f.Add("label", projectLabel)
	}

	containers, err := c.ContainerList(ctx, client.ContainerListOptions{
		All:     true,
		Filters: f,
	})
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list containers: %w", err)
	}

	var out []ContainerStatus
	for _, item := range containers.Items {
		name := item.ID
		if len(item.Names) > 0 {
			name = strings.TrimPrefix(item.Names[0], "/")
		}
		out = append(out, ContainerStatus{
			Name:    name,
			Image:   item.Image,
			State:   string(item.State),
			Status:  item.Status,
			Project: item.Labels[projectLabel],
		})
	}
	return out, nil
}
