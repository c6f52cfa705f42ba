package lsaws_test

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/basewarphq/cdklocal/lsaws"
	"github.com/basewarphq/cdklocal/lsenv"
)

func ExampleNewConfig() {
	ctx := context.Background()

	env := map[string]string{"AWS_REGION": "eu-central-1"}
	if err := lsenv.Configure(env, "AWS_REGION"); err != nil {
		fmt.Println(err)
		return
	}

	cfg, err := lsaws.NewConfig(ctx, env)
	if err != nil {
		fmt.Println(err)
		return
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(cfg.Region)
	fmt.Println(aws.ToString(cfg.BaseEndpoint))
	fmt.Println(creds.AccessKeyID)
	// Output:
	// eu-central-1
	// http://localhost.localstack.cloud:4566
	// test
}
