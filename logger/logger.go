package logger

import (
	"fmt"
	"io"
	"log/syslog"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"
)

const (
	DefaultTag      = "check_white_rabbit"
	logLevelInfo    = "INFO"
	logLevelDebug   = "DEBUG"
	logLevelWarning = "WARNING"
	logLevelError   = "ERROR"
)

//Log struct for the log
type Log struct {
	logWriter           *syslog.Writer
	shouldWriteToStderr bool
	isDebugAllowed      bool
	filePath            string
	logMu               sync.Mutex
	stderr              io.Writer
}

//Logger struct for the Logger interface
type Logger interface {
	EnableDebugMode()
	EnableWriteToStderr()
	EnableSyslog() error
	GetLogFilePath() string
	Info(s string)
	Warning(s string)
	Debug(s string)
	Error(s string)
}

// NewLoggerFactory returns a logger appending to logFilePath. An empty path
// disables the log file; the plugin's stdout is never written to.
func NewLoggerFactory(logFilePath string) (Logger, error) {
	l := &Log{stderr: os.Stderr}
	if strings.EqualFold(logFilePath, "") {
		return l, nil
	}
	basePath, extension, err := getLogFilePathAndExtension(logFilePath)
	if err != nil {
		return nil, fmt.Errorf("error while validating log file path. error: %v", err)
	}
	if !isLogFilePathValid(basePath, extension) {
		return nil, fmt.Errorf("invalid log file path. log path: %s", logFilePath)
	}
	f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0640)
	if err != nil {
		return nil, err
	}
	f.Close()
	l.filePath = logFilePath
	return l, nil
}

func isLogFilePathValid(basePath, extension string) bool {
	return !strings.EqualFold(basePath, "") && !strings.EqualFold(extension, "")
}

func getLogFilePathAndExtension(logFilePath string) (string, string, error) {
	matcher := regexp.MustCompile(`(.*)\.([^/]*)$`)
	matchGroups := matcher.FindAllStringSubmatch(logFilePath, -1)
	if len(matchGroups) == 0 || len(matchGroups[0]) < 3 {
		return "", "", fmt.Errorf("log file path is not in the right format. path: %s", logFilePath)
	}
	return matchGroups[0][1], matchGroups[0][2], nil
}

func (l *Log) EnableDebugMode() {
	l.isDebugAllowed = true
}

func (l *Log) EnableWriteToStderr() {
	l.shouldWriteToStderr = true
}

// EnableSyslog mirrors every message to the local syslog daemon.
func (l *Log) EnableSyslog() error {
	w, err := syslog.New(syslog.LOG_NOTICE|syslog.LOG_DAEMON, DefaultTag)
	if err != nil {
		return err
	}
	l.logWriter = w
	return nil
}

func (l *Log) GetLogFilePath() string {
	return l.filePath
}

//Info write as Info
func (l *Log) Info(s string) {
	if l.logWriter != nil {
		_ = l.logWriter.Info(s)
	}
	l.write(logLevelInfo, s)
}

//Warning write as Warning
func (l *Log) Warning(s string) {
	if l.logWriter != nil {
		_ = l.logWriter.Warning(s)
	}
	l.write(logLevelWarning, s)
}

//Debug write as Debug
func (l *Log) Debug(s string) {
	if !l.isDebugAllowed {
		return
	}
	if l.logWriter != nil {
		_ = l.logWriter.Debug(s)
	}
	l.write(logLevelDebug, s)
}

//Error write as Error
func (l *Log) Error(s string) {
	if l.logWriter != nil {
		_ = l.logWriter.Err(s)
	}
	l.write(logLevelError, s)
}

func (l *Log) write(level, s string) {
	if !l.shouldWriteToStderr && l.filePath == "" {
		return
	}
	nl := ""
	if !strings.HasSuffix(s, "\n") {
		nl = "\n"
	}
	timestamp := time.Now().Format(time.StampMilli)
	msg := fmt.Sprintf("%s %s[%d]: %s: %s%s",
		timestamp,
		DefaultTag, os.Getpid(), level, s, nl)

	l.logMu.Lock()
	defer l.logMu.Unlock()

	if l.shouldWriteToStderr && l.stderr != nil {
		_, _ = io.WriteString(l.stderr, msg)
	}
	if l.filePath == "" {
		return
	}
	f, err := os.OpenFile(l.filePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0640)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error while opening the log file. error: %v\n", err)
		return
	}
	defer f.Close()
	if _, err = io.WriteString(f, msg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error while writing to the log file. error: %v\n", err)
	}
}

// Discard is a Logger that drops every message.
var Discard Logger = &Log{}
