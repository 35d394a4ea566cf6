package shell

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/siahcodes/quickcmd/pkg/model"
)

// runStreaming starts cmd, forwards stdout to onLine line-by-line as it
// arrives, drains stderr concurrently and returns the structured
// result once the process exits. Both pipes are read incrementally so a
// chatty process can never fill a pipe buffer and deadlock the drain.
// When ctx expires the process is killed and the result carries
// TimedOut instead of an error.
func runStreaming(ctx context.Context, cmd *exec.Cmd, onLine func(string)) (model.ExecutionResult, error) {
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return model.ExecutionResult{ExitCode: -1}, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return model.ExecutionResult{ExitCode: -1}, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return model.ExecutionResult{ExitCode: -1}, fmt.Errorf("start %s: %w", cmd.Path, err)
	}

	var outBuf, errBuf strings.Builder
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			outBuf.WriteString(line)
			outBuf.WriteByte('\n')
			if onLine != nil {
				onLine(line)
			}
		}
	}()

	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stderr)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			errBuf.WriteString(scanner.Text())
			errBuf.WriteByte('\n')
		}
	}()

	// Drain both pipes before Wait closes them.
	wg.Wait()
	waitErr := cmd.Wait()

	result := model.ExecutionResult{
		Stdout: strings.TrimRight(outBuf.String(), "\n"),
		Stderr: strings.TrimRight(errBuf.String(), "\n"),
	}

	if ctx.Err() == context.DeadlineExceeded {
		result.TimedOut = true
		result.ExitCode = -1
		return result, nil
	}

	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		result.ExitCode = -1
		return result, fmt.Errorf("wait %s: %w", cmd.Path, waitErr)
	}

	result.ExitCode = cmd.ProcessState.ExitCode()
	return result, nil
}
