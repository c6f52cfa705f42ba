package lsaws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/basewarphq/cdklocal/lsenv"
)

// NewS3Client creates an S3 client for the emulator's S3 endpoint.
func NewS3Client(cfg aws.Config, env map[string]string) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if u := env[lsenv.EndpointURLS3]; u != "" {
			o.BaseEndpoint = aws.String(u)
		}
	})
}

// NewSQSClient creates an SQS client, honoring AWS_ENDPOINT_URL_SQS.
func NewSQSClient(cfg aws.Config, env map[string]string) *sqs.Client {
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if u := serviceEndpoint(env, "SQS"); u != "" {
			o.BaseEndpoint = aws.String(u)
		}
	})
}

// NewDynamoDBClient creates a DynamoDB client, honoring AWS_ENDPOINT_URL_DYNAMODB.
func NewDynamoDBClient(cfg aws.Config, env map[string]string) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if u := serviceEndpoint(env, "DYNAMODB"); u != "" {
			o.BaseEndpoint = aws.String(u)
		}
	})
}

// serviceEndpoint resolves AWS_ENDPOINT_URL_<service> from env, falling back to AWS_ENDPOINT_URL.
// The SDK only looks these up in the process environment, not in env.
func serviceEndpoint(env map[string]string, service string) string {
	if u := env[lsenv.EndpointURL+"_"+service]; u != "" {
		return u
	}
	return env[lsenv.EndpointURL]
}
