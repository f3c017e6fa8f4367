package service

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"paper-analyzer/internal/domain"
	apperrors "paper-analyzer/pkg/errors"
)

const containerDataDir = "/data"

// containerAPI is the subset of the Docker client the launcher needs
type containerAPI interface {
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig,
		networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
}

// DockerLauncher runs the worker binary in a fresh container per session,
// with the session directory bind-mounted at /data
type DockerLauncher struct {
	docker containerAPI
	image  string
	logger domain.Logger
}

// NewDockerLauncher connects to the Docker daemon described by the environment
func NewDockerLauncher(image string, logger domain.Logger) (*DockerLauncher, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("docker client: %w", err)
	}
	return newDockerLauncher(cli, image, logger), nil
}

func newDockerLauncher(docker containerAPI, image string, logger domain.Logger) *DockerLauncher {
	return &DockerLauncher{
		docker: docker,
		image:  image,
		logger: logger,
	}
}

// Launch creates and starts container worker-<sessionID>
func (l *DockerLauncher) Launch(ctx context.Context, sessionID string, pdfPath string) error {
	absSource, err := filepath.Abs(filepath.Dir(pdfPath))
	if err != nil {
		return apperrors.NewInternalError("error resolving absolute path", err)
	}

	resp, err := l.docker.ContainerCreate(ctx,
		&container.Config{
			Image: l.image,
			Cmd:   []string{"--session", sessionID, "--file", path.Join(containerDataDir, filepath.Base(pdfPath))},
		},
		&container.HostConfig{
			Mounts: []mount.Mount{
				{
					Type:   mount.TypeBind,
					Source: absSource,
					Target: containerDataDir,
				},
			},
		}, nil, nil, "worker-"+sessionID)
	if err != nil {
		return apperrors.NewInternalError("error creating container", err)
	}

	if err := l.docker.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return apperrors.NewInternalError("error starting container", err)
	}

	l.logger.Info("Worker started", "session", sessionID, "mode", "docker", "container", resp.ID)
	return nil
}
