// Package executor turns concurrent faucet requests into serially executed
// on-chain transactions. Each of the two queues (drips, deployments) is
// drained by exactly one long-lived consumer goroutine; within a queue,
// requests run in strict arrival order against that queue's signing identity.
package executor

import (
	"sync"
	"time"

	"github.com/core-coin/fontis/internal/models"
	"github.com/core-coin/fontis/internal/queue"
	"github.com/core-coin/fontis/pkg/logger"
)

const (
	// DrainIdle is how long a drain loop parks when its queue stays empty
	// and no wake signal arrives. A fallback only; enqueues wake the loop.
	DrainIdle = time.Second

	// TransferReplyTimeout bounds how long a caller waits for a drip result.
	TransferReplyTimeout = 60 * time.Second
	// DeployReplyTimeout bounds how long a caller waits for a deployment.
	DeployReplyTimeout = 300 * time.Second
)

type transferTask struct {
	req   *models.TransferRequest
	auth  models.AuthContext
	reply chan models.ExecutorResponse
}

type deployTask struct {
	req   *models.DeployRequest
	reply chan models.ExecutorResponse
}

// Executor owns the two request queues and the signing identities that drain
// them. Never hand a queue to a second consumer; the single-consumer rule is
// what protects the per-key nonce sequence.
type Executor struct {
	logger *logger.Logger

	repo  models.Repository
	gate  *EligibilityGate
	award *AwardPolicy

	// faucetChain signs drips; deployChain signs deployments and the
	// post-deploy distribution. Separate keys, separate nonce sequences.
	faucetChain models.BlockchainService
	deployChain models.BlockchainService
	assets      models.AssetHost
	alerter     models.Alerter

	transfers *queue.Queue[transferTask]
	deploys   *queue.Queue[deployTask]

	idle     time.Duration
	stopOnce sync.Once
	done     chan struct{}
}

func NewExecutor(
	repo models.Repository,
	faucetChain models.BlockchainService,
	deployChain models.BlockchainService,
	assets models.AssetHost,
	award *AwardPolicy,
	alerter models.Alerter,
	logger *logger.Logger,
) *Executor {
	return &Executor{
		logger:      logger,
		repo:        repo,
		gate:        NewEligibilityGate(repo),
		award:       award,
		faucetChain: faucetChain,
		deployChain: deployChain,
		assets:      assets,
		alerter:     alerter,
		transfers:   queue.New[transferTask](),
		deploys:     queue.New[deployTask](),
		idle:        DrainIdle,
		done:        make(chan struct{}),
	}
}

// Start launches the two drain loops. Call it exactly once.
func (e *Executor) Start() {
	go e.drainTransfers()
	go e.drainDeploys()
}

// Stop terminates both drain loops once they go idle.
func (e *Executor) Stop() {
	e.stopOnce.Do(func() { close(e.done) })
}

// SubmitTransfer queues a drip request and returns its reply channel. The
// caller-supplied magnification is discarded here and replaced with the
// server-computed value; nothing downstream ever trusts the request's own
// field. For native drips the token address is normalized to the zero
// address so eligibility windows and audit rows key consistently.
func (e *Executor) SubmitTransfer(req *models.TransferRequest, auth models.AuthContext) <-chan models.ExecutorResponse {
	if req.TokenType == models.TokenNative {
		req.TokenAddress = models.ZeroAddress
	}
	req.Magnification = e.award.MagnificationFor(auth, req.To)

	reply := make(chan models.ExecutorResponse, 1)
	e.transfers.Enqueue(transferTask{req: req, auth: auth, reply: reply})
	return reply
}

// SubmitDeploy queues a token deployment and returns its reply channel.
func (e *Executor) SubmitDeploy(req *models.DeployRequest) <-chan models.ExecutorResponse {
	reply := make(chan models.ExecutorResponse, 1)
	e.deploys.Enqueue(deployTask{req: req, reply: reply})
	return reply
}

// Tokens lists every token the faucet knows about.
func (e *Executor) Tokens() ([]*models.Token, error) {
	return e.repo.GetAllTokens()
}

func (e *Executor) drainTransfers() {
	for {
		task, ok := e.transfers.Dequeue()
		if !ok {
			if e.idleWait(e.transfers.Wake()) {
				return
			}
			continue
		}
		resp := e.processTransfer(task.req)
		e.send(task.reply, resp)
	}
}

func (e *Executor) drainDeploys() {
	for {
		task, ok := e.deploys.Dequeue()
		if !ok {
			if e.idleWait(e.deploys.Wake()) {
				return
			}
			continue
		}
		resp := e.processDeploy(task.req)
		e.send(task.reply, resp)
	}
}

// idleWait parks until an enqueue, the fallback tick, or shutdown. Reports
// true when the loop should exit.
func (e *Executor) idleWait(wake <-chan struct{}) bool {
	timer := time.NewTimer(e.idle)
	defer timer.Stop()
	select {
	case <-e.done:
		return true
	case <-wake:
	case <-timer.C:
	}
	return false
}

// send delivers the terminal response for a request. The caller may have
// stopped waiting long ago; a dropped or closed reply channel must never
// stall or kill the drain loop.
func (e *Executor) send(reply chan<- models.ExecutorResponse, resp models.ExecutorResponse) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Reply channel closed by caller ", "panic ", r)
		}
	}()
	select {
	case reply <- resp:
	default:
		e.logger.Warn("Dropping response: caller stopped waiting")
	}
}

func (e *Executor) alert(message string) {
	if e.alerter == nil {
		return
	}
	e.alerter.Alert(message)
}
