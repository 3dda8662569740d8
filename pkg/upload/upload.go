package upload

import (
    "errors"
    "io"
    "mime/multipart"
    "net/http"
    "os"
    "path/filepath"

    "github.com/google/uuid"
)

var (
    ErrImageTooLarge = errors.New("image exceeds maximum size of 2MB")
    ErrImageFormat   = errors.New("only JPEG, PNG and GIF images are supported")
)

var allowedTypes = map[string]string{
    "image/jpeg": ".jpg",
    "image/png":  ".png",
    "image/gif":  ".gif",
}

// SaveImage 校验并落盘上传的图片，返回相对路径。
// 先嗅探前 512 字节判断真实格式，再做大小上限检查，不信任客户端 Content-Type。
func SaveImage(fh *multipart.FileHeader, dir, prefix string, maxBytes int64) (string, error) {
    if fh.Size > maxBytes {
        return "", ErrImageTooLarge
    }
    src, err := fh.Open()
    if err != nil {
        return "", err
    }
    defer src.Close()

    head := make([]byte, 512)
    n, err := src.Read(head)
    if err != nil && err != io.EOF {
        return "", err
    }
    ext, ok := allowedTypes[http.DetectContentType(head[:n])]
    if !ok {
        return "", ErrImageFormat
    }
    if _, err := src.Seek(0, io.SeekStart); err != nil {
        return "", err
    }

    if err := os.MkdirAll(dir, 0o755); err != nil {
        return "", err
    }
    name := prefix + "_" + uuid.New().String() + ext
    path := filepath.Join(dir, name)
    dst, err := os.Create(path)
    if err != nil {
        return "", err
    }
    defer dst.Close()
    if _, err := io.Copy(dst, src); err != nil {
        os.Remove(path)
        return "", err
    }
    return path, nil
}
