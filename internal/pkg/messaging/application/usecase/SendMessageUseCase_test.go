package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ricky944902/classmate-web/internal/pkg/messaging/cipher"
	messaging "github.com/Ricky944902/classmate-web/internal/pkg/messaging/domain"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

type fakeMessageRepo struct {
	saved   []messaging.Message
	saveErr error
}

func (f *fakeMessageRepo) Save(ctx context.Context, m messaging.Message) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	m.ID = "msg-1"
	f.saved = append(f.saved, m)
	return m.ID, nil
}

func (f *fakeMessageRepo) GetConversation(ctx context.Context, userID, peerID string) ([]messaging.Message, error) {
	var out []messaging.Message
	for _, m := range f.saved {
		if (m.SenderID == userID && m.RecipientID == peerID) || (m.SenderID == peerID && m.RecipientID == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeWordSource struct {
	words []string
	err   error
}

func (f *fakeWordSource) Words(ctx context.Context) ([]string, error) {
	return f.words, f.err
}

type publishedEvent struct {
	channel string
	payload []byte
}

type fakePublisher struct {
	events []publishedEvent
}

func (f *fakePublisher) Publish(channelUserID string, payload []byte) int {
	f.events = append(f.events, publishedEvent{channel: channelUserID, payload: payload})
	return 1
}

func newKey(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return hex.EncodeToString(key)
}

func TestSendMessageHappyPath(t *testing.T) {
	repo := &fakeMessageRepo{}
	pub := &fakePublisher{}
	key := newKey(t)

	uc := NewSendMessageUseCase(repo, &fakeWordSource{words: []string{"badword"}}, pub)

	msg, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:      "sender-1",
		RecipientID:   "recipient-1",
		Content:       "hello",
		EncryptionKey: key,
	})
	require.NoError(t, err)
	require.NotNil(t, msg)

	// Persisted record is encrypted, never plaintext.
	require.Len(t, repo.saved, 1)
	assert.True(t, repo.saved[0].IsEncrypted)
	assert.NotEqual(t, "hello", repo.saved[0].Content)

	plain, err := cipher.Decrypt(repo.saved[0].Content, key)
	require.NoError(t, err)
	assert.Equal(t, "hello", plain)

	// Fan-out: recipient channel then sender echo, identical ciphertext.
	require.Len(t, pub.events, 2)
	assert.Equal(t, "recipient-1", pub.events[0].channel)
	assert.Equal(t, "sender-1", pub.events[1].channel)

	var received, sent MessageEvent
	require.NoError(t, json.Unmarshal(pub.events[0].payload, &received))
	require.NoError(t, json.Unmarshal(pub.events[1].payload, &sent))

	assert.Equal(t, EventMessageReceived, received.Type)
	assert.Equal(t, EventMessageSent, sent.Type)
	assert.Equal(t, received.Content, sent.Content)
	assert.Equal(t, msg.Content, received.Content)
	assert.True(t, received.IsEncrypted)

	// The pushed record is immediately fetchable via history.
	history, err := NewGetHistoryUseCase(repo).Execute(context.Background(), GetHistoryInput{UserID: "sender-1", PeerID: "recipient-1"})
	require.NoError(t, err)
	require.Len(t, history, 1)
	plain, err = cipher.Decrypt(history[0].Content, key)
	require.NoError(t, err)
	assert.Equal(t, "hello", plain)
}

func TestSendMessageModeratedContentIsRejected(t *testing.T) {
	repo := &fakeMessageRepo{}
	pub := &fakePublisher{}

	uc := NewSendMessageUseCase(repo, &fakeWordSource{words: []string{"badword"}}, pub)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:      "sender-1",
		RecipientID:   "recipient-1",
		Content:       "this has a badword here",
		EncryptionKey: newKey(t),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeModerated, apperrors.CodeOf(err))

	// No persistence, no fan-out.
	assert.Empty(t, repo.saved)
	assert.Empty(t, pub.events)
}

func TestSendMessageEmbeddedWordPasses(t *testing.T) {
	repo := &fakeMessageRepo{}
	pub := &fakePublisher{}

	uc := NewSendMessageUseCase(repo, &fakeWordSource{words: []string{"badword"}}, pub)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:      "sender-1",
		RecipientID:   "recipient-1",
		Content:       "thisbadwordhere",
		EncryptionKey: newKey(t),
	})
	require.NoError(t, err)
	assert.Len(t, repo.saved, 1)
}

func TestSendMessagePersistFailureSuppressesFanout(t *testing.T) {
	repo := &fakeMessageRepo{saveErr: assert.AnError}
	pub := &fakePublisher{}

	uc := NewSendMessageUseCase(repo, &fakeWordSource{}, pub)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:      "sender-1",
		RecipientID:   "recipient-1",
		Content:       "hello",
		EncryptionKey: newKey(t),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUnavailable, apperrors.CodeOf(err))
	assert.Empty(t, pub.events)
}

func TestSendMessageWordSourceFailure(t *testing.T) {
	repo := &fakeMessageRepo{}
	pub := &fakePublisher{}

	uc := NewSendMessageUseCase(repo, &fakeWordSource{err: assert.AnError}, pub)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:      "sender-1",
		RecipientID:   "recipient-1",
		Content:       "hello",
		EncryptionKey: newKey(t),
	})
	require.Error(t, err)
	assert.Empty(t, repo.saved)
	assert.Empty(t, pub.events)
}

func TestSendMessageSelfMessageRejected(t *testing.T) {
	uc := NewSendMessageUseCase(&fakeMessageRepo{}, &fakeWordSource{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:      "user-1",
		RecipientID:   "user-1",
		Content:       "hello me",
		EncryptionKey: newKey(t),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
}

func TestSendMessageEmptyContentRejected(t *testing.T) {
	uc := NewSendMessageUseCase(&fakeMessageRepo{}, &fakeWordSource{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:      "sender-1",
		RecipientID:   "recipient-1",
		EncryptionKey: newKey(t),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
}
