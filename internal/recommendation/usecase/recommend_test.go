package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"project-planner/internal/model"
	"project-planner/internal/recommendation"
	"project-planner/internal/recommendation/repository"
	"project-planner/internal/recommendation/repository/memory"
	"project-planner/pkg/llmprovider"
)

func newTestUseCase(gen, ext LLM, maxHistory int) (*implUseCase, *memory.ConversationStore, *memory.ResultStore) {
	opt := repository.Options{MaxHistory: maxHistory}
	history := memory.NewConversationStore(opt)
	results := memory.NewResultStore(opt)
	return New(&mockLogger{}, gen, ext, history, results), history, results
}

func TestRecommend_Success(t *testing.T) {
	gen := textLLM("### **Project Plan Summary**")
	uc, history, results := newTestUseCase(gen, nil, 10)
	ctx := context.Background()

	out, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: "u1", UserInput: "Build a deck"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.UserID != "u1" || out.Recommendation != "### **Project Plan Summary**" {
		t.Errorf("unexpected output: %+v", out)
	}

	req := gen.lastRequest()
	if req.SystemInstruction == nil || req.SystemInstruction.Content != SystemPromptRecommend {
		t.Error("expected recommend system prompt")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != "user" || req.Messages[0].Content != "Build a deck" {
		t.Errorf("unexpected messages: %+v", req.Messages)
	}

	ctxMsgs := history.GetContext(ctx, "u1")
	if len(ctxMsgs) != 2 {
		t.Fatalf("expected 2 history messages, got %d", len(ctxMsgs))
	}
	if ctxMsgs[0].Role != model.RoleUser || ctxMsgs[1].Role != model.RoleAssistant {
		t.Errorf("unexpected roles: %+v", ctxMsgs)
	}
	for _, m := range ctxMsgs {
		if m.Role == model.RoleSystem {
			t.Error("system prompt must not be stored in history")
		}
	}

	latest, err := results.GetLatest(ctx, "u1")
	if err != nil || latest != out.Recommendation {
		t.Errorf("latest result not stored: %q, %v", latest, err)
	}
}

func TestRecommend_UsesPriorContext(t *testing.T) {
	gen := textLLM("plan")
	uc, _, _ := newTestUseCase(gen, nil, 10)
	ctx := context.Background()

	if _, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: "u1", UserInput: "first"}); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: "u1", UserInput: "The timeline is too long"}); err != nil {
		t.Fatal(err)
	}

	req := gen.lastRequest()
	want := []struct{ role, content string }{
		{"user", "first"},
		{"assistant", "plan"},
		{"user", "The timeline is too long"},
	}
	if len(req.Messages) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(req.Messages))
	}
	for i, w := range want {
		if req.Messages[i].Role != w.role || req.Messages[i].Content != w.content {
			t.Errorf("message %d: got %+v, want %+v", i, req.Messages[i], w)
		}
	}
}

func TestRecommend_HistoryBounded(t *testing.T) {
	gen := textLLM("reply")
	uc, history, _ := newTestUseCase(gen, nil, 4)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: "u", UserInput: fmt.Sprintf("q%d", i)}); err != nil {
			t.Fatal(err)
		}
	}

	msgs := history.GetContext(ctx, "u")
	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	if msgs[0].Content != "q3" || msgs[2].Content != "q4" {
		t.Errorf("unexpected surviving history: %+v", msgs)
	}
	// the last request carried at most MaxHistory context messages + new input
	if n := len(gen.lastRequest().Messages); n != 5 {
		t.Errorf("expected 4 context messages + input, got %d", n)
	}
}

func TestRecommend_FailureCommitsNothing(t *testing.T) {
	gen := errLLM(errors.New("openai down"))
	uc, history, results := newTestUseCase(gen, nil, 10)
	ctx := context.Background()

	_, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: "u1", UserInput: "x"})
	if !errors.Is(err, recommendation.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}

	if got := history.GetContext(ctx, "u1"); len(got) != 0 {
		t.Errorf("history must be untouched, got %+v", got)
	}
	if _, err := results.GetLatest(ctx, "u1"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("latest result must be untouched, got %v", err)
	}
}

func TestRecommend_FailureKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	fail := false
	gen := &mockLLM{fn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return &llmprovider.Response{Content: llmprovider.Message{Content: "v1"}}, nil
	}}
	uc, history, results := newTestUseCase(gen, nil, 10)

	if _, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: "u", UserInput: "a"}); err != nil {
		t.Fatal(err)
	}
	fail = true
	if _, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: "u", UserInput: "b"}); err == nil {
		t.Fatal("expected error")
	}

	if got := history.GetContext(ctx, "u"); len(got) != 2 {
		t.Errorf("expected previous 2 messages only, got %d", len(got))
	}
	if got, _ := results.GetLatest(ctx, "u"); got != "v1" {
		t.Errorf("expected latest to stay v1, got %q", got)
	}
}

func TestRecommend_EmptyResponse(t *testing.T) {
	uc, history, _ := newTestUseCase(textLLM("   "), nil, 10)

	_, err := uc.Recommend(context.Background(), recommendation.RecommendInput{UserID: "u", UserInput: "x"})
	if !errors.Is(err, recommendation.ErrGenerationFailed) {
		t.Errorf("expected ErrGenerationFailed, got %v", err)
	}
	if len(history.GetContext(context.Background(), "u")) != 0 {
		t.Error("empty response must not be committed")
	}
}

func TestRecommend_InvalidInput(t *testing.T) {
	gen := textLLM("plan")
	uc, _, _ := newTestUseCase(gen, nil, 10)
	ctx := context.Background()

	if _, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: " ", UserInput: "x"}); !errors.Is(err, recommendation.ErrEmptyUserID) {
		t.Errorf("expected ErrEmptyUserID, got %v", err)
	}
	if _, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: "u", UserInput: ""}); !errors.Is(err, recommendation.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if gen.calls() != 0 {
		t.Errorf("expected no model calls, got %d", gen.calls())
	}
}

func TestRecommend_ConcurrentSameUserSerialized(t *testing.T) {
	var inFlight, maxInFlight int
	var mu sync.Mutex
	gen := &mockLLM{fn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return &llmprovider.Response{Content: llmprovider.Message{Content: "re: " + req.Messages[len(req.Messages)-1].Content}}, nil
	}}
	uc, history, _ := newTestUseCase(gen, nil, 100)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: "same", UserInput: fmt.Sprintf("q%d", i)})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if maxInFlight != 1 {
		t.Errorf("expected same-user generations to be serialized, saw %d in flight", maxInFlight)
	}

	msgs := history.GetContext(ctx, "same")
	if len(msgs) != 10 {
		t.Fatalf("expected 10 messages, got %d", len(msgs))
	}
	for i := 0; i < len(msgs); i += 2 {
		if msgs[i].Role != model.RoleUser || msgs[i+1].Role != model.RoleAssistant {
			t.Fatalf("turns interleaved at %d: %+v", i, msgs[i:i+2])
		}
		if msgs[i+1].Content != "re: "+msgs[i].Content {
			t.Errorf("reply does not follow its question: %+v", msgs[i:i+2])
		}
	}
	if uc.locks.len() != 0 {
		t.Errorf("expected user locks to be released, %d remain", uc.locks.len())
	}
}

func TestRecommend_SlowUserDoesNotBlockOthers(t *testing.T) {
	release := make(chan struct{})
	gen := &mockLLM{fn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		if req.Messages[len(req.Messages)-1].Content == "slow" {
			<-release
		}
		return &llmprovider.Response{Content: llmprovider.Message{Content: "ok"}}, nil
	}}
	uc, history, _ := newTestUseCase(gen, nil, 10)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = uc.Recommend(ctx, recommendation.RecommendInput{UserID: "slow-user", UserInput: "slow"})
	}()

	fast := make(chan error, 1)
	go func() {
		_, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: "fast-user", UserInput: "fast"})
		fast <- err
	}()

	select {
	case err := <-fast:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("fast user blocked by slow user's model call")
	}

	if got := history.GetContext(ctx, "fast-user"); len(got) != 2 {
		t.Errorf("expected fast user history, got %+v", got)
	}
	if got := history.GetContext(ctx, "slow-user"); len(got) != 0 {
		t.Errorf("slow user must not be committed while in flight, got %+v", got)
	}

	close(release)
	<-done
}

func TestRecommend_CancelledWhileWaitingForLock(t *testing.T) {
	release := make(chan struct{})
	gen := &mockLLM{fn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		<-release
		return &llmprovider.Response{Content: llmprovider.Message{Content: "ok"}}, nil
	}}
	uc, _, _ := newTestUseCase(gen, nil, 10)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = uc.Recommend(context.Background(), recommendation.RecommendInput{UserID: "u", UserInput: "first"})
	}()

	for gen.calls() == 0 {
		time.Sleep(time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: "u", UserInput: "second"})
	if !errors.Is(err, recommendation.ErrGenerationFailed) {
		t.Errorf("expected ErrGenerationFailed, got %v", err)
	}

	close(release)
	<-done
}
