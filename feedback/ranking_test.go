package feedback

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/itemfeedback/core"
)

func scripted(lines ...string) (*LineConsole, *bytes.Buffer) {
	var out bytes.Buffer
	return NewConsole(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out), &out
}

func collection(n int) core.Collection {
	return make(core.Collection, n)
}

func TestCollectRanking_Permutation(t *testing.T) {
	con, out := scripted("2, 0, 3, 1")
	ranking, ok, err := CollectRanking(context.Background(), con, collection(4))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{2, 0, 3, 1}, ranking)
	assert.Equal(t, "Your ranking: ", out.String())
}

func TestCollectRanking_EmptyInput(t *testing.T) {
	con, _ := scripted("")
	ranking, ok, err := CollectRanking(context.Background(), con, collection(3))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, ranking)
}

func TestCollectRanking_NoDigitsIsAbsence(t *testing.T) {
	con, _ := scripted("a, b, c")
	_, ok, err := CollectRanking(context.Background(), con, collection(3))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollectRanking_RepromptsOnLengthMismatch(t *testing.T) {
	con, out := scripted("0, 1", "0,1,2,3", "1,x,0,-2,2")
	ranking, ok, err := CollectRanking(context.Background(), con, collection(3))
	require.NoError(t, err)
	assert.True(t, ok)
	// 非数字 token（x、-2）被丢弃
	assert.Equal(t, []int{1, 0, 2}, ranking)

	text := out.String()
	assert.Contains(t, text, "Invalid ranking: You provided 2 indices, but there are 3 itemsets.\n")
	assert.Contains(t, text, "Invalid ranking: You provided 4 indices, but there are 3 itemsets.\n")
	assert.Equal(t, 2, strings.Count(text, "Please try again. Note that you may hit <Enter> if the default ranking is satisfactory\n"))
	assert.Equal(t, 3, strings.Count(text, rankingPrompt))
}

func TestCollectRanking_DoesNotValidatePermutation(t *testing.T) {
	con, _ := scripted("1,1,9")
	ranking, ok, err := CollectRanking(context.Background(), con, collection(3))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 1, 9}, ranking)
}

func TestCollectRanking_LongLine(t *testing.T) {
	const n = 20000
	want := make([]int, n)
	toks := make([]string, n)
	for i := range want {
		want[i] = n - 1 - i
		toks[i] = strconv.Itoa(want[i])
	}
	line := strings.Join(toks, ", ")
	require.Greater(t, len(line), 64*1024)

	con, _ := scripted(line)
	ranking, ok, err := CollectRanking(context.Background(), con, collection(n))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, ranking)
}

func TestCollectRanking_EOF(t *testing.T) {
	con := NewConsole(strings.NewReader("0,1\n"), &bytes.Buffer{})
	_, ok, err := CollectRanking(context.Background(), con, collection(3))
	require.NoError(t, err)
	assert.False(t, ok)
}

type errConsole struct{ bytes.Buffer }

func (c *errConsole) ReadLine(string) (string, error) { return "", errors.New("tty gone") }

func TestCollectRanking_ReadError(t *testing.T) {
	_, _, err := CollectRanking(context.Background(), &errConsole{}, collection(3))
	assert.ErrorContains(t, err, "tty gone")
}

func TestCollectRanking_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	con, _ := scripted("0")
	_, _, err := CollectRanking(ctx, con, collection(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRankingCollector_Collect(t *testing.T) {
	con, _ := scripted("1,0")
	c := &RankingCollector{Console: con}
	assert.Equal(t, ModeRanking, c.Mode())

	out, err := c.Collect(context.Background(), collection(2))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, ModeRanking, out.Mode)
	assert.Equal(t, []int{1, 0}, out.Ranking)

	con, _ = scripted("")
	out, err = (&RankingCollector{Console: con}).Collect(context.Background(), collection(2))
	require.NoError(t, err)
	assert.Nil(t, out)
}
