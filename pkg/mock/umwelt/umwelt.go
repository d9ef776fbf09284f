package mock

import (
	"github.com/linecard/albevents/internal/gitlib"
	"github.com/linecard/albevents/internal/umwelt"
	mockfixture "github.com/linecard/albevents/pkg/mock/fixture"
)

// FromFixture perceives a fixture service as if it were checked out on gitMock
// and compiled by the mocked STS caller.
func FromFixture(fixture string, gitMock gitlib.DotGit) umwelt.Here {
	spec := mockfixture.Service(fixture)

	return umwelt.Here{
		Caller: umwelt.ThisCaller{
			Id:      "AIDAJQABLZS4A3QDU576Q",
			Arn:     "arn:aws:iam::123456789012:user/test",
			Account: "123456789012",
			Region:  "us-east-1",
		},
		Git: gitMock,
		Service: umwelt.ThisService{
			Path: fixture,
			Name: string(spec.Name),
			Spec: spec,
		},
		Context: umwelt.GetContext(spec, gitMock),
	}
}
