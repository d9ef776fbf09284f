package template

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func permission(principal string) Resource {
	return Resource{
		Type: TypeLambdaPermission,
		Properties: PermissionProperties{
			FunctionName: Arn("FooLambdaFunction"),
			Action:       "lambda:InvokeFunction",
			Principal:    principal,
		},
	}
}

func TestResourcesMerge(t *testing.T) {
	first := Resources{"A": permission("first"), "B": permission("first")}
	second := Resources{"B": permission("second"), "C": permission("second")}

	merged := Resources{}.Merge(first, second)

	assert.Len(t, merged, 3)
	assert.Equal(t, "first", merged["A"].Properties.(PermissionProperties).Principal)
	assert.Equal(t, "second", merged["B"].Properties.(PermissionProperties).Principal, "later writes win")
	assert.Equal(t, "second", merged["C"].Properties.(PermissionProperties).Principal)
}

func TestIntrinsics(t *testing.T) {
	b, err := json.Marshal(Arn("FooLambdaFunction"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::GetAtt": ["FooLambdaFunction", "Arn"]}`, string(b))

	b, err = json.Marshal(RefTo("FooLambdaTargetGroup"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Ref": "FooLambdaTargetGroup"}`, string(b))
}

func TestTemplate(t *testing.T) {
	tests := []struct {
		name string
		test func(*testing.T)
	}{
		{
			name: "new template merges into an empty Resources section",
			test: func(t *testing.T) {
				tmpl := New()
				require.NoError(t, tmpl.Merge(Resources{"FooLambdaPermissionAlb": permission("elasticloadbalancing.amazonaws.com")}))

				b, err := tmpl.JSON()
				require.NoError(t, err)
				assert.JSONEq(t, `{
					"AWSTemplateFormatVersion": "2010-09-09",
					"Resources": {
						"FooLambdaPermissionAlb": {
							"Type": "AWS::Lambda::Permission",
							"Properties": {
								"FunctionName": {"Fn::GetAtt": ["FooLambdaFunction", "Arn"]},
								"Action": "lambda:InvokeFunction",
								"Principal": "elasticloadbalancing.amazonaws.com"
							}
						}
					}
				}`, string(b))
			},
		},
		{
			name: "existing resources survive unless replaced",
			test: func(t *testing.T) {
				tmpl, err := Decode([]byte(`{
					"Description": "compiled",
					"Resources": {
						"Bucket": {"Type": "AWS::S3::Bucket"},
						"FooLambdaPermissionAlb": {"Type": "Stale"}
					}
				}`), ".json")
				require.NoError(t, err)

				require.NoError(t, tmpl.Merge(Resources{"FooLambdaPermissionAlb": permission("elasticloadbalancing.amazonaws.com")}))

				resources := tmpl.Body["Resources"].(map[string]any)
				assert.Contains(t, resources, "Bucket")
				assert.Equal(t, TypeLambdaPermission, resources["FooLambdaPermissionAlb"].(Resource).Type)
				assert.Equal(t, "compiled", tmpl.Body["Description"])
			},
		},
		{
			name: "yaml templates decode and render",
			test: func(t *testing.T) {
				tmpl, err := Decode([]byte("Resources:\n  Bucket:\n    Type: AWS::S3::Bucket\n"), ".yml")
				require.NoError(t, err)
				require.NoError(t, tmpl.Merge(Resources{"FooLambdaPermissionAlb": permission("elasticloadbalancing.amazonaws.com")}))

				b, err := tmpl.Render("yaml")
				require.NoError(t, err)
				assert.Contains(t, string(b), "Fn::GetAtt:")
				assert.Contains(t, string(b), "Bucket:")
			},
		},
		{
			name: "malformed Resources section is rejected",
			test: func(t *testing.T) {
				tmpl, err := Decode([]byte(`{"Resources": []}`), ".json")
				require.NoError(t, err)
				assert.Error(t, tmpl.Merge(Resources{}))
			},
		},
		{
			name: "unknown extensions and formats are rejected",
			test: func(t *testing.T) {
				_, err := Decode([]byte(`{}`), ".txt")
				assert.ErrorContains(t, err, "unsupported template extension")

				_, err = New().Render("xml")
				assert.ErrorContains(t, err, "unsupported output format")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.test)
	}
}
