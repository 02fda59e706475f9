package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-resizer/internal/adapter/handler"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-resizer/internal/usecase/clean"
	"github.com/marcos-nsantos/image-resizer/internal/usecase/resize"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
	apiBasePath   = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Container  testcontainers.Container
	Minio      *minio.Client
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:RELEASE.2024-01-16T16-07-38Z",
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     testAccessKey,
				"MINIO_ROOT_PASSWORD": testSecretKey,
			},
			Cmd: []string{"server", "/data"},
			WaitingFor: wait.ForHTTP("/minio/health/live").
				WithPort("9000/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)
	endpoint := fmt.Sprintf("%s:%s", host, port.Port())

	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(testAccessKey, testSecretKey, ""),
	})
	require.NoError(t, err)
	require.NoError(t, client.MakeBucket(ctx, clean.Bucket, minio.MakeBucketOptions{}))

	store, err := storage.NewMinioStorage(config.S3Config{
		Endpoint:        endpoint,
		Region:          "us-east-1",
		AccessKeyID:     testAccessKey,
		SecretAccessKey: testSecretKey,
		UseSSL:          false,
	})
	require.NoError(t, err)

	logger, _ := zap.NewDevelopment()

	resizeSvc := resize.NewService(store, storage.NewImageProcessor(), config.ResizerConfig{
		DestPrefix:   "resized/",
		TargetWidth:  800,
		TargetHeight: 600,
	}, logger)
	cleanSvc := clean.NewService(store, logger)

	router := server.NewRouter(server.RouterConfig{
		ResizeHandler: handler.NewResizeHandler(resizeSvc, logger),
		CleanHandler:  handler.NewCleanHandler(cleanSvc, logger),
		Logger:        logger,
		Environment:   "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Container: container,
		Minio:     client,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()

	if err := app.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) post(path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return app.httpClient.Do(req)
}

func (app *TestApp) putObject(t *testing.T, key string, data []byte, contentType string) {
	t.Helper()
	_, err := app.Minio.PutObject(context.Background(), clean.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	require.NoError(t, err)
}

func (app *TestApp) getObject(t *testing.T, key string) ([]byte, minio.ObjectInfo) {
	t.Helper()
	obj, err := app.Minio.GetObject(context.Background(), clean.Bucket, key, minio.GetObjectOptions{})
	require.NoError(t, err)
	defer obj.Close()

	data, err := io.ReadAll(obj)
	require.NoError(t, err)
	info, err := obj.Stat()
	require.NoError(t, err)
	return data, info
}

func (app *TestApp) listKeys(t *testing.T, prefix string) []string {
	t.Helper()
	var keys []string
	for obj := range app.Minio.ListObjects(context.Background(), clean.Bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		require.NoError(t, obj.Err)
		keys = append(keys, obj.Key)
	}
	return keys
}

// notification mirrors the body MinIO posts to webhook targets.
func notification(bucket string, keys ...string) map[string]any {
	records := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		records = append(records, map[string]any{
			"eventName": "s3:ObjectCreated:Put",
			"s3": map[string]any{
				"bucket": map[string]any{"name": bucket},
				"object": map[string]any{"key": key},
			},
		})
	}
	return map[string]any{
		"EventName": "s3:ObjectCreated:Put",
		"Records":   records,
	}
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, dest))
}
