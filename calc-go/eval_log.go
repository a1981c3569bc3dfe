package calc_go

import (
	"fmt"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const kEvalLogSchema = "CREATE TABLE IF NOT EXISTS eval_log (`id` INTEGER PRIMARY KEY, " +
	"`fingerprint` INTEGER NOT NULL UNIQUE, `expression` TEXT, `postfix` TEXT, " +
	"`result` INTEGER, `error` TEXT, `created_at` INTEGER, `last_access` INTEGER, " +
	"`hits` INTEGER DEFAULT 1);"

// LogEntry is one row of the local evaluation log.
type LogEntry struct {
	Expression string
	Postfix    string
	Result     int64
	Error      string
	CreatedAt  int64
	LastAccess int64
	Hits       int64
}

// EvalLog records evaluations in a local SQLite file. An expression that
// is evaluated again updates its row instead of adding one.
type EvalLog struct {
	file_path_  string
	conn_       *sqlite.Conn
	stmtRecord_ *sqlite.Stmt
	stmtList_   *sqlite.Stmt
}

func OpenEvalLog(path string) (*EvalLog, error) {
	ret := EvalLog{file_path_: path}
	var err error
	ret.conn_, err = sqlite.OpenConn(path, sqlite.OpenReadWrite|sqlite.OpenCreate)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if err := sqlitex.ExecuteTransient(ret.conn_, kEvalLogSchema, nil); err != nil {
		ret.conn_.Close()
		return nil, fmt.Errorf("creating eval_log in %s: %w", path, err)
	}
	ret.stmtRecord_, err = ret.conn_.Prepare("INSERT INTO eval_log (`fingerprint`, `expression`, " +
		"`postfix`, `result`, `error`, `created_at`, `last_access`) VALUES " +
		"($fingerprint, $expression, $postfix, $result, $error, $now, $now) " +
		"ON CONFLICT(fingerprint) DO UPDATE SET `postfix`=$postfix, `result`=$result, " +
		"`error`=$error, `last_access`=$now, `hits`=`hits`+1;")
	if err != nil {
		ret.conn_.Close()
		return nil, err
	}
	ret.stmtList_, err = ret.conn_.Prepare("SELECT `expression`, `postfix`, `result`, `error`, " +
		"`created_at`, `last_access`, `hits` FROM eval_log ORDER BY `last_access` DESC, `id` DESC LIMIT $limit;")
	if err != nil {
		ret.conn_.Close()
		return nil, err
	}
	return &ret, nil
}

// Record stores the outcome of evaluating expr. Exactly one of ev and
// evalErr is expected to be non-nil.
func (this *EvalLog) Record(expr string, ev *Evaluation, evalErr error) error {
	defer this.stmtRecord_.Reset()
	this.stmtRecord_.SetInt64("$fingerprint", int64(ExpressionFingerprint(expr)))
	this.stmtRecord_.SetText("$expression", expr)
	if ev != nil {
		this.stmtRecord_.SetText("$postfix", ev.Postfix.String())
		this.stmtRecord_.SetInt64("$result", ev.Result)
		this.stmtRecord_.SetNull("$error")
	} else {
		this.stmtRecord_.SetNull("$postfix")
		this.stmtRecord_.SetNull("$result")
		this.stmtRecord_.SetText("$error", evalErr.Error())
	}
	this.stmtRecord_.SetInt64("$now", time.Now().Unix())
	if _, err := this.stmtRecord_.Step(); err != nil {
		return fmt.Errorf("recording %q: %w", expr, err)
	}
	return nil
}

// Entries returns up to limit rows, most recently used first.
func (this *EvalLog) Entries(limit int) ([]*LogEntry, error) {
	defer this.stmtList_.Reset()
	this.stmtList_.SetInt64("$limit", int64(limit))
	var ret []*LogEntry
	for {
		hasRow, err := this.stmtList_.Step()
		if err != nil {
			return nil, err
		}
		if !hasRow {
			break
		}
		ret = append(ret, &LogEntry{
			Expression: this.stmtList_.GetText("expression"),
			Postfix:    this.stmtList_.GetText("postfix"),
			Result:     this.stmtList_.GetInt64("result"),
			Error:      this.stmtList_.GetText("error"),
			CreatedAt:  this.stmtList_.GetInt64("created_at"),
			LastAccess: this.stmtList_.GetInt64("last_access"),
			Hits:       this.stmtList_.GetInt64("hits"),
		})
	}
	return ret, nil
}

// Clear removes every row.
func (this *EvalLog) Clear() error {
	return sqlitex.ExecuteTransient(this.conn_, "DELETE FROM eval_log;", nil)
}

func (this *EvalLog) Close() error {
	if this.conn_ == nil {
		return nil
	}
	err := this.conn_.Close()
	this.conn_ = nil
	return err
}
