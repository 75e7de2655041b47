package server

import "net/http"

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(homePage))
}

func (s *Server) handleWebhookInfo(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(webhookInfoPage))
}

// NOTE: Go raw string literals cannot contain backticks (`), so the inline JS
// below uses string concatenation instead of template literals.
const homePage = `<!DOCTYPE html>
<html lang="en" data-bs-theme="dark">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>AMIGO - AI Therapy Chatbot</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
    <link href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.0/font/bootstrap-icons.css" rel="stylesheet">
    <style>
        body { height: 100vh; overflow: hidden; }
        .container { height: 100vh; display: flex; flex-direction: column; padding: 1rem; }
        .header-section { flex-shrink: 0; margin-bottom: 1rem; }
        .chat-card { flex: 1; display: flex; flex-direction: column; min-height: 0; }
        .chat-container {
            flex: 1; overflow-y: auto;
            border: 1px solid var(--bs-border-color); border-radius: 0.375rem;
            padding: 1rem; background: var(--bs-body-bg); min-height: 0;
        }
        .input-section { flex-shrink: 0; border-top: 1px solid var(--bs-border-color); padding: 1rem; }
        .footer-section { flex-shrink: 0; text-align: center; margin-top: 0.5rem; }
        .message { margin-bottom: 1rem; display: flex; align-items: flex-start; }
        .message.user { justify-content: flex-end; }
        .message.bot { justify-content: flex-start; }
        .message-content { max-width: 70%; padding: 0.75rem 1rem; border-radius: 1rem; }
        .message.user .message-content {
            background: var(--bs-primary); color: white; border-bottom-right-radius: 0.25rem;
        }
        .message.bot .message-content {
            background: var(--bs-secondary-bg); border: 1px solid var(--bs-border-color);
            border-bottom-left-radius: 0.25rem;
        }
        .message-avatar {
            width: 36px; height: 36px; border-radius: 50%;
            display: flex; align-items: center; justify-content: center;
            margin: 0 0.5rem; font-size: 1.2rem;
        }
        .message.user .message-avatar { background: var(--bs-info); order: 2; }
        .message.bot .message-avatar { background: var(--bs-success); order: 1; }
        .typing-indicator {
            display: none; padding: 1rem; color: var(--bs-secondary); font-style: italic;
        }
        .typing-indicator.show { display: block; }
        .quick-actions { margin-bottom: 1rem; }
        .quick-action-btn { margin: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <div class="container">
        <div class="row justify-content-center h-100">
            <div class="col-lg-8 d-flex flex-column h-100">
                <div class="header-section text-center">
                    <h1 class="h3 fw-bold text-primary mb-1">
                        <i class="bi bi-heart-pulse"></i> AMIGO
                    </h1>
                    <p class="text-muted small mb-0">Your compassionate AI therapy companion</p>
                </div>

                <div class="card chat-card">
                    <div class="card-body p-0 d-flex flex-column h-100">
                        <div id="chatContainer" class="chat-container">
                            <div class="message bot">
                                <div class="message-avatar"><i class="bi bi-robot"></i></div>
                                <div class="message-content">
                                    <strong>AMIGO</strong><br>
                                    Hello! I'm AMIGO, and I'm here to listen and support you. How are you feeling today?
                                </div>
                            </div>
                        </div>

                        <div id="typingIndicator" class="typing-indicator">AMIGO is thinking...</div>

                        <div class="input-section">
                            <div class="quick-actions">
                                <div class="text-muted small mb-2">Quick options:</div>
                                <button class="btn btn-outline-secondary btn-sm quick-action-btn" onclick="sendQuickMessage('I feel sad today')">
                                    <i class="bi bi-emoji-frown"></i> Feeling sad
                                </button>
                                <button class="btn btn-outline-secondary btn-sm quick-action-btn" onclick="sendQuickMessage('I feel anxious')">
                                    <i class="bi bi-emoji-dizzy"></i> Feeling anxious
                                </button>
                                <button class="btn btn-outline-secondary btn-sm quick-action-btn" onclick="sendQuickMessage('Can you help me with a coping strategy?')">
                                    <i class="bi bi-lightbulb"></i> Need coping help
                                </button>
                                <button class="btn btn-outline-secondary btn-sm quick-action-btn" onclick="sendQuickMessage('I need a breathing exercise')">
                                    <i class="bi bi-wind"></i> Breathing exercise
                                </button>
                            </div>

                            <div class="input-group">
                                <input type="text" id="messageInput" class="form-control"
                                       placeholder="Share what's on your mind..."
                                       onkeypress="handleKeyPress(event)">
                                <button class="btn btn-primary" onclick="sendMessage()">
                                    <i class="bi bi-send"></i> Send
                                </button>
                            </div>
                        </div>
                    </div>
                </div>

                <div class="footer-section">
                    <small class="text-warning mb-1 d-block">
                        <i class="bi bi-exclamation-triangle"></i>
                        <strong>Crisis?</strong> Call 988 (Suicide &amp; Crisis Lifeline) or 911 immediately
                    </small>
                    <small class="text-muted">
                        <i class="bi bi-shield-check"></i>
                        Safe space &bull;
                        <a href="/webhook-info" class="text-muted">
                            <i class="bi bi-code-slash"></i> Developer info
                        </a>
                    </small>
                </div>
            </div>
        </div>
    </div>

    <script>
        function handleKeyPress(event) {
            if (event.key === 'Enter') {
                sendMessage();
            }
        }

        function sendQuickMessage(message) {
            document.getElementById('messageInput').value = message;
            sendMessage();
        }

        async function sendMessage() {
            const input = document.getElementById('messageInput');
            const message = input.value.trim();

            if (!message) return;

            addMessage(message, 'user');
            input.value = '';
            showTyping(true);

            try {
                const response = await fetch('/chat', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ message: message })
                });

                const data = await response.json();
                showTyping(false);
                addMessage(data.response, 'bot');
            } catch (error) {
                showTyping(false);
                addMessage("I'm having trouble connecting right now. Please try again in a moment.", 'bot');
            }
        }

        function addMessage(text, sender) {
            const chatContainer = document.getElementById('chatContainer');
            const messageDiv = document.createElement('div');
            messageDiv.className = 'message ' + sender;

            const avatarIcon = sender === 'user' ? 'bi-person-circle' : 'bi-robot';
            const senderName = sender === 'user' ? 'You' : 'AMIGO';

            messageDiv.innerHTML =
                '<div class="message-avatar"><i class="bi ' + avatarIcon + '"></i></div>' +
                '<div class="message-content"><strong>' + senderName + '</strong><br></div>';
            messageDiv.querySelector('.message-content').append(text);

            chatContainer.appendChild(messageDiv);
            chatContainer.scrollTop = chatContainer.scrollHeight;
        }

        function showTyping(show) {
            const typingIndicator = document.getElementById('typingIndicator');
            typingIndicator.classList.toggle('show', show);
            if (show) {
                const chatContainer = document.getElementById('chatContainer');
                chatContainer.scrollTop = chatContainer.scrollHeight;
            }
        }
    </script>
</body>
</html>
`

const webhookInfoPage = `<!DOCTYPE html>
<html lang="en" data-bs-theme="dark">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>AMIGO - Webhook Integration</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
    <link href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.0/font/bootstrap-icons.css" rel="stylesheet">
</head>
<body>
    <div class="container mt-5">
        <div class="row justify-content-center">
            <div class="col-lg-8">
                <div class="text-center mb-5">
                    <h1 class="display-4 fw-bold text-primary mb-3">
                        <i class="bi bi-code-slash"></i> AMIGO Webhook
                    </h1>
                    <p class="lead text-muted">Developer Integration Guide</p>
                    <a href="/" class="btn btn-outline-primary">
                        <i class="bi bi-arrow-left"></i> Back to Chat Demo
                    </a>
                </div>

                <div class="card mb-4">
                    <div class="card-body">
                        <h2 class="card-title h4 mb-3">
                            <i class="bi bi-link-45deg"></i> Webhook Endpoints
                        </h2>
                        <div class="row g-3">
                            <div class="col-md-6">
                                <div class="p-3 bg-dark rounded">
                                    <strong class="text-success">Main Webhook:</strong><br>
                                    <code class="text-light">/webhook</code><br>
                                    <small class="text-muted">For Dialogflow integration</small>
                                </div>
                            </div>
                            <div class="col-md-6">
                                <div class="p-3 bg-dark rounded">
                                    <strong class="text-info">Health Check:</strong><br>
                                    <code class="text-light">/health</code><br>
                                    <small class="text-muted">Server status monitoring</small>
                                </div>
                            </div>
                        </div>
                    </div>
                </div>

                <div class="card mb-4">
                    <div class="card-body">
                        <h3 class="card-title h5 mb-3">
                            <i class="bi bi-gear"></i> Dialogflow Setup
                        </h3>
                        <ol class="list-group list-group-numbered list-group-flush">
                            <li class="list-group-item bg-transparent border-0 px-0">
                                Copy this webhook URL to your Google Dialogflow agent
                            </li>
                            <li class="list-group-item bg-transparent border-0 px-0">
                                Navigate to <strong>Fulfillment</strong> in your Dialogflow console
                            </li>
                            <li class="list-group-item bg-transparent border-0 px-0">
                                Enable webhook and paste the URL with <code>/webhook</code> endpoint
                            </li>
                            <li class="list-group-item bg-transparent border-0 px-0">
                                Configure your intents to use webhook fulfillment
                            </li>
                        </ol>
                    </div>
                </div>

                <div class="card">
                    <div class="card-body">
                        <h3 class="card-title h5 mb-3">
                            <i class="bi bi-code"></i> Sample Test Request
                        </h3>
                        <p class="text-muted">Use this curl command to test the webhook:</p>
                        <pre class="bg-dark p-3 rounded"><code class="text-light">curl -X POST [YOUR_WEBHOOK_URL]/webhook \
  -H "Content-Type: application/json" \
  -d '{
    "queryResult": {
      "intent": {
        "displayName": "express_sadness"
      },
      "queryText": "I feel really sad today",
      "parameters": {}
    },
    "session": "projects/test-project/agent/sessions/test-session"
  }'</code></pre>
                    </div>
                </div>
            </div>
        </div>
    </div>
</body>
</html>
`
