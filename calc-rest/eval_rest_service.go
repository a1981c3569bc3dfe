package main

import (
	"encoding/json"
	"errors"
	"expvar"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/expvarhandler"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"infix-calc-go/calc-go"
	"infix-calc-go/model"
)

// Various counters - see https://pkg.go.dev/expvar for details.
var (
	evalCalls      = expvar.NewInt("evalCalls")
	evalErrors     = expvar.NewInt("evalErrors")
	evalCacheHits  = expvar.NewInt("evalCacheHits")
	cleanedRecords = expvar.NewInt("cleanedRecords")
)

const (
	kDefaultHistoryLimit = 20
	kMaxHistoryLimit     = 200
)

type EvalResponse struct {
	Expression string `json:"expression,omitempty"`
	Postfix    string `json:"postfix"`
	Result     *int64 `json:"result,omitempty"`
	Hash       string `json:"hash,omitempty"`
	Cached     bool   `json:"cached,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Pos   int    `json:"pos"`
}

// Service answers evaluation requests and keeps their history.
type Service struct {
	store_  *Store
	logger_ *zap.Logger
	// how long a history row stays live after its last access
	expiry_ time.Duration
}

func NewService(store *Store, logger *zap.Logger, expiry time.Duration) *Service {
	return &Service{store_: store, logger_: logger, expiry_: expiry}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	buf, err := json.Marshal(v)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(buf)
}

func writeEvalError(ctx *fasthttp.RequestCtx, err error) {
	evalErrors.Add(1)
	writeJSON(ctx, fasthttp.StatusUnprocessableEntity, ErrorResponse{
		Error: err.Error(),
		Kind:  calc_go.KindName(err),
		Pos:   calc_go.ErrorPos(err),
	})
}

func (this *Service) HandleEval(ctx *fasthttp.RequestCtx) {
	evalCalls.Add(1)
	expr := string(ctx.FormValue("expr"))
	hash := calc_go.ExpressionHash(expr)

	rec, err := this.store_.FindRecord(hash)
	if err == nil {
		evalCacheHits.Add(1)
		if err := this.store_.TouchRecord(rec.ID); err != nil {
			this.logger_.Warn("touch failed", zap.Int64("id", rec.ID), zap.Error(err))
		}
		writeJSON(ctx, fasthttp.StatusOK, EvalResponse{
			Expression: rec.Expression, Postfix: rec.Postfix, Result: &rec.Result,
			Hash: hash, Cached: true,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		this.logger_.Error("history lookup failed", zap.String("hash", hash), zap.Error(err))
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}

	start := time.Now()
	ev, err := calc_go.Run(expr)
	if err != nil {
		this.logger_.Info("evaluation failed", zap.String("expr", expr),
			zap.String("kind", calc_go.KindName(err)), zap.Error(err))
		writeEvalError(ctx, err)
		return
	}
	this.logger_.Debug("evaluated", zap.String("expr", expr), zap.Int64("result", ev.Result),
		zap.Duration("elapsed", time.Since(start)))

	now := time.Now().Unix()
	err = this.store_.SaveRecord(&model.EvalRecord{
		ExpressionHash:  hash,
		Expression:      expr,
		Postfix:         ev.Postfix.String(),
		Result:          ev.Result,
		CreatedAt:       now,
		LastAccess:      now,
		ExpiredDuration: int64(this.expiry_ / time.Second),
		Hits:            1,
	})
	if err != nil {
		this.logger_.Error("saving history failed", zap.String("hash", hash), zap.Error(err))
	}
	writeJSON(ctx, fasthttp.StatusOK, EvalResponse{
		Expression: expr, Postfix: ev.Postfix.String(), Result: &ev.Result, Hash: hash,
	})
}

func (this *Service) HandlePostfix(ctx *fasthttp.RequestCtx) {
	expr := string(ctx.FormValue("expr"))
	postfix, err := calc_go.Translate(expr)
	if err != nil {
		writeEvalError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, EvalResponse{Expression: expr, Postfix: postfix.String()})
}

func (this *Service) HandleRPN(ctx *fasthttp.RequestCtx) {
	evalCalls.Add(1)
	text := string(ctx.FormValue("postfix"))
	ev, err := calc_go.RunPostfix(text, nil)
	if err != nil {
		writeEvalError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, EvalResponse{Postfix: ev.Postfix.String(), Result: &ev.Result})
}

func (this *Service) HandleHistory(ctx *fasthttp.RequestCtx) {
	limit := kDefaultHistoryLimit
	if s := string(ctx.QueryArgs().Peek("limit")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			ctx.Error("invalid limit", fasthttp.StatusBadRequest)
			return
		}
		limit = min(n, kMaxHistoryLimit)
	}
	items, err := this.store_.RecentRecords(limit)
	if err != nil {
		this.logger_.Error("history query failed", zap.Error(err))
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []*model.EvalRecord{}
	}
	writeJSON(ctx, fasthttp.StatusOK, items)
}

func (this *Service) RequestHandler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/eval":
		this.HandleEval(ctx)
	case "/postfix":
		this.HandlePostfix(ctx)
	case "/rpn":
		this.HandleRPN(ctx)
	case "/history":
		this.HandleHistory(ctx)
	case "/stats":
		expvarhandler.ExpvarHandler(ctx)
	default:
		ctx.Error("not found", fasthttp.StatusNotFound)
	}
}

func (this *Service) NewServer(compress bool) *fasthttp.Server {
	handler := this.RequestHandler
	if compress {
		handler = fasthttp.CompressHandler(handler)
	}
	return &fasthttp.Server{
		Handler:      handler,
		Name:         "calc-rest",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}
