package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/require"
)

func TestInProcessLauncher_RunsAnalysis(t *testing.T) {
	repo := NewMockSummaryRepository()
	svc := NewAnalysisService(&MockTextExtractor{text: "Hello World Again"}, repo, &MockLogger{})
	launcher := NewInProcessLauncher(svc, &MockLogger{})

	require.NoError(t, launcher.Launch(context.Background(), "abc123", "paper.pdf"))
	launcher.Wait()

	got, ok := repo.get("summary:abc123")
	require.True(t, ok)
	require.Equal(t, "Hello World Again", got)
}

func TestInProcessLauncher_FailureDoesNotWrite(t *testing.T) {
	repo := NewMockSummaryRepository()
	svc := NewAnalysisService(&MockTextExtractor{err: errors.New("bad pdf")}, repo, &MockLogger{})
	launcher := NewInProcessLauncher(svc, &MockLogger{})

	require.NoError(t, launcher.Launch(context.Background(), "abc123", "paper.pdf"))
	launcher.Wait()

	require.Equal(t, 0, repo.setCalls)
}

type fakeDocker struct {
	config    *container.Config
	host      *container.HostConfig
	name      string
	startedID string
	createErr error
}

func (f *fakeDocker) ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig,
	networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error) {
	if f.createErr != nil {
		return container.CreateResponse{}, f.createErr
	}
	f.config, f.host, f.name = config, hostConfig, containerName
	return container.CreateResponse{ID: "c0ffee"}, nil
}

func (f *fakeDocker) ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error {
	f.startedID = containerID
	return nil
}

func TestDockerLauncher_CreatesWorkerContainer(t *testing.T) {
	docker := &fakeDocker{}
	launcher := newDockerLauncher(docker, "paper-processor:latest", &MockLogger{})
	dir := t.TempDir()

	err := launcher.Launch(context.Background(), "2610191", filepath.Join(dir, "paper.pdf"))

	require.NoError(t, err)
	require.Equal(t, "worker-2610191", docker.name)
	require.Equal(t, "paper-processor:latest", docker.config.Image)
	require.Equal(t, []string{"--session", "2610191", "--file", "/data/paper.pdf"}, []string(docker.config.Cmd))
	require.Len(t, docker.host.Mounts, 1)
	require.Equal(t, mount.TypeBind, docker.host.Mounts[0].Type)
	require.Equal(t, dir, docker.host.Mounts[0].Source)
	require.Equal(t, "/data", docker.host.Mounts[0].Target)
	require.Equal(t, "c0ffee", docker.startedID)
}

func TestDockerLauncher_CreateError(t *testing.T) {
	docker := &fakeDocker{createErr: errors.New("no such image")}
	launcher := newDockerLauncher(docker, "missing:latest", &MockLogger{})

	err := launcher.Launch(context.Background(), "s", "/tmp/s/paper.pdf")

	require.Error(t, err)
	require.Empty(t, docker.startedID)
}
