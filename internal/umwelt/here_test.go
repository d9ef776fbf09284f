package umwelt_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/linecard/albevents/internal/gitlib"
	"github.com/linecard/albevents/internal/umwelt"
	"github.com/linecard/albevents/pkg/convention/event"
	"github.com/linecard/albevents/pkg/convention/manifest"
	mockclient "github.com/linecard/albevents/pkg/mock/client"
	mockfixture "github.com/linecard/albevents/pkg/mock/fixture"
	mockrepo "github.com/linecard/albevents/pkg/mock/repo"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetStage(t *testing.T) {
	cases := []struct {
		name  string
		setup func(*testing.T) (manifest.Service, gitlib.DotGit)
		want  string
	}{
		{
			name: "environment wins",
			setup: func(t *testing.T) (manifest.Service, gitlib.DotGit) {
				t.Setenv(umwelt.EnvStage, "override")
				spec := manifest.Service{Provider: manifest.Provider{Stage: "production"}}
				return spec, gitlib.DotGit{Branch: "main"}
			},
			want: "override",
		},
		{
			name: "provider stage",
			setup: func(t *testing.T) (manifest.Service, gitlib.DotGit) {
				spec := manifest.Service{Provider: manifest.Provider{Stage: "production"}}
				return spec, gitlib.DotGit{Branch: "main"}
			},
			want: "production",
		},
		{
			name: "git branch without slashes",
			setup: func(t *testing.T) (manifest.Service, gitlib.DotGit) {
				return manifest.Service{}, gitlib.DotGit{Branch: "feature/alb"}
			},
			want: "feature-alb",
		},
		{
			name: "default",
			setup: func(t *testing.T) (manifest.Service, gitlib.DotGit) {
				return manifest.Service{}, gitlib.DotGit{}
			},
			want: umwelt.DefaultStage,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec, git := tc.setup(t)
			assert.Equal(t, tc.want, umwelt.GetStage(umwelt.EnvStage, spec, git))
		})
	}
}

func TestGetListenerAndHost(t *testing.T) {
	spec := mockfixture.Service("conditions.yml")

	assert.Equal(t, mockfixture.ListenerArn, umwelt.GetListenerArn(umwelt.EnvListenerArn, spec))
	assert.Equal(t, event.StringList{"example.com"}, umwelt.GetHost(umwelt.EnvHost, spec))

	t.Setenv(umwelt.EnvListenerArn, "arn:aws:elasticloadbalancing:us-east-1:123456789012:listener/app/other/1/2")
	t.Setenv(umwelt.EnvHost, "a.example.com, b.example.com")

	assert.Equal(t, "arn:aws:elasticloadbalancing:us-east-1:123456789012:listener/app/other/1/2", umwelt.GetListenerArn(umwelt.EnvListenerArn, spec))
	assert.Equal(t, event.StringList{"a.example.com", "b.example.com"}, umwelt.GetHost(umwelt.EnvHost, spec))
}

func TestFromPath(t *testing.T) {
	ctx := context.Background()
	awsConfig := aws.Config{Region: "us-east-1"}

	cases := []struct {
		name  string
		setup func(*testing.T, string) (string, umwelt.STSClient)
		test  func(*testing.T, umwelt.Here, error)
	}{
		{
			name: "directory with caller",
			setup: func(t *testing.T, root string) (string, umwelt.STSClient) {
				stsc := &mockclient.MockSTSClient{}
				stsc.On("GetCallerIdentity", mock.Anything, mock.Anything).Return(mockclient.MockCallerIdentity(), nil)
				return root, stsc
			},
			test: func(t *testing.T, here umwelt.Here, err error) {
				require.NoError(t, err)
				assert.Equal(t, "some-service", here.Service.Name)
				assert.Equal(t, "production", here.Context.Stage)
				assert.Equal(t, mockfixture.ListenerArn, here.Context.DefaultListenerArn)
				assert.Equal(t, "123456789012", here.Caller.Account)
				assert.Equal(t, "us-east-1", here.Caller.Region)
			},
		},
		{
			name: "file without caller",
			setup: func(t *testing.T, root string) (string, umwelt.STSClient) {
				return filepath.Join(root, "serverless.yml"), nil
			},
			test: func(t *testing.T, here umwelt.Here, err error) {
				require.NoError(t, err)
				assert.Empty(t, here.Caller.Account)
				assert.Len(t, here.Service.Spec.Functions, 3)
			},
		},
		{
			name: "caller lookup fails",
			setup: func(t *testing.T, root string) (string, umwelt.STSClient) {
				stsc := &mockclient.MockSTSClient{}
				stsc.On("GetCallerIdentity", mock.Anything, mock.Anything).Return((*sts.GetCallerIdentityOutput)(nil), errors.New("expired token"))
				return root, stsc
			},
			test: func(t *testing.T, here umwelt.Here, err error) {
				assert.ErrorContains(t, err, "expired token")
			},
		},
		{
			name: "missing service definition",
			setup: func(t *testing.T, root string) (string, umwelt.STSClient) {
				return t.TempDir(), nil
			},
			test: func(t *testing.T, here umwelt.Here, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			git, cleanup := mockrepo.MockRepository(filepath.Join(t.TempDir(), "project"), "main", "conditions.yml")
			defer cleanup()

			path, stsc := tc.setup(t, git.Root)
			here, err := umwelt.FromPath(ctx, path, git, awsConfig, stsc)
			tc.test(t, here, err)
		})
	}
}

func TestFromSpec(t *testing.T) {
	here := umwelt.FromSpec(mockfixture.Service("basic.yml"), "qa")

	assert.Equal(t, "some-service", here.Service.Name)
	assert.Equal(t, "qa", here.Context.Stage)
	assert.Equal(t, mockfixture.ListenerArn, here.Context.DefaultListenerArn)
}
