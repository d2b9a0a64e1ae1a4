package output

import (
	"bufio"
	"encoding/json"
	"os"
)

// Writer 快照输出器
// 功能：把快照按JSON Lines格式追加写入文件
type Writer struct {
	f   *os.File
	buf *bufio.Writer
	enc *json.Encoder
}

// NewWriter 创建快照输出器
// 参数：path-输出文件路径，已存在时覆盖
func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(f)
	return &Writer{f: f, buf: buf, enc: json.NewEncoder(buf)}, nil
}

// Write 写出一条快照
func (w *Writer) Write(s *Snapshot) error {
	return w.enc.Encode(s)
}

// Close 刷新缓冲并关闭文件
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
