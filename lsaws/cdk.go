package lsaws

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
)

// DefaultAccount is the account id LocalStack reports for test credentials.
const DefaultAccount = "000000000000"

// StackEnvironment returns the CDK environment stacks should be synthesized for.
// CDK_DEPLOY_* wins over CDK_DEFAULT_*; the emulator defaults fill the rest.
func StackEnvironment(env map[string]string) *awscdk.Environment {
	account := firstNonEmpty(env["CDK_DEPLOY_ACCOUNT"], env["CDK_DEFAULT_ACCOUNT"], DefaultAccount)
	region := firstNonEmpty(env["CDK_DEPLOY_REGION"], env["CDK_DEFAULT_REGION"], Region(env))

	return &awscdk.Environment{
		Account: jsii.String(account),
		Region:  jsii.String(region),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
