package export

import "github.com/thenoetrevino/board/internal/config"

func testExportConfig(bucket string) config.ExportConfig {
	return config.ExportConfig{
		Endpoint:     "http://localhost:9000",
		Region:       "us-east-1",
		Bucket:       bucket,
		AccessKey:    "minio",
		SecretKey:    "minio123",
		UsePathStyle: true,
	}
}
