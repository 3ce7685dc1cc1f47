package feedback

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// 单行初始缓冲；超过后按需扩容，行长度不设上限
const initialLineBuffer = 64 * 1024

// Console 是交互式的行输入/输出协作者。
// 写入（io.Writer）用于提示与诊断信息，ReadLine 先输出 prompt 再读取一行。
// 输入结束时 ReadLine 返回 io.EOF。
type Console interface {
	io.Writer
	ReadLine(prompt string) (string, error)
}

// LineConsole 基于 bufio.Scanner 的 Console 实现，适用于 stdin/stdout 以及测试中的脚本输入。
type LineConsole struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole 创建一个按行读取 r、向 w 输出的 Console。
func NewConsole(r io.Reader, w io.Writer) *LineConsole {
	in := bufio.NewScanner(r)
	in.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	return &LineConsole{
		in:  in,
		out: w,
	}
}

func (c *LineConsole) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *LineConsole) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(c.out, prompt); err != nil {
			return "", err
		}
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

// nextLine 读取一行并去掉首尾空白。输入结束（EOF）等同于空行。
func nextLine(ctx context.Context, con Console, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := con.ReadLine(prompt)
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read line: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// formatIndices 按 "[1, 0, 2]" 的形式格式化下标列表。
func formatIndices(idx []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range idx {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(']')
	return b.String()
}
