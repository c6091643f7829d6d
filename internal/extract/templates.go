package extract

// Fallback templates used when a generate-app reply has no usable block for a file.
// Together they form a complete, renderable landing page.

const DefaultHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>My App</title>
    <link rel="stylesheet" href="style.css">
</head>
<body>
    <div class="container">
        <header class="header">
            <h1>Welcome to My App</h1>
            <p>Your application is ready to be customized</p>
        </header>
        <main class="main">
            <section class="hero">
                <h2>Get Started</h2>
                <p>This is a template app generated by MojoCode AI. Customize it to match your vision!</p>
                <button class="cta-button" onclick="handleCTAClick(event)">Get Started</button>
            </section>
        </main>
        <footer class="footer">
            <p>&copy; My App. Built with MojoCode.</p>
        </footer>
    </div>
    <script src="script.js"></script>
</body>
</html>`

const DefaultCSS = `* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

:root {
    --primary-color: #3b82f6;
    --primary-hover: #2563eb;
    --text-primary: #1e293b;
    --text-secondary: #64748b;
    --shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1);
    --transition: all 0.3s cubic-bezier(0.4, 0, 0.2, 1);
}

body {
    font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    line-height: 1.6;
    color: var(--text-primary);
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    min-height: 100vh;
}

.container {
    max-width: 1200px;
    margin: 0 auto;
    padding: 2rem;
    min-height: 100vh;
    display: flex;
    flex-direction: column;
}

.header {
    text-align: center;
    margin-bottom: 3rem;
    background: rgba(255, 255, 255, 0.1);
    backdrop-filter: blur(10px);
    border-radius: 20px;
    padding: 2rem;
    border: 1px solid rgba(255, 255, 255, 0.2);
}

.header h1 {
    font-size: 3rem;
    margin-bottom: 1rem;
    color: white;
    font-weight: 700;
}

.header p {
    font-size: 1.2rem;
    color: rgba(255, 255, 255, 0.9);
}

.main {
    flex: 1;
    display: flex;
    align-items: center;
    justify-content: center;
}

.hero {
    text-align: center;
    background: rgba(255, 255, 255, 0.95);
    padding: 3rem;
    border-radius: 20px;
    box-shadow: var(--shadow);
    max-width: 600px;
    transition: var(--transition);
    animation: fadeInUp 0.8s ease-out;
}

.hero h2 {
    font-size: 2.5rem;
    margin-bottom: 1rem;
}

.hero p {
    color: var(--text-secondary);
    margin-bottom: 2rem;
}

.cta-button {
    background: var(--primary-color);
    color: white;
    border: none;
    padding: 1rem 2rem;
    font-size: 1.1rem;
    font-weight: 600;
    border-radius: 12px;
    cursor: pointer;
    transition: var(--transition);
}

.cta-button:hover {
    background: var(--primary-hover);
    transform: translateY(-2px);
}

.footer {
    text-align: center;
    margin-top: 3rem;
    color: rgba(255, 255, 255, 0.8);
    font-size: 0.9rem;
}

@media (max-width: 768px) {
    .container {
        padding: 1rem;
    }

    .header h1 {
        font-size: 2rem;
    }

    .hero {
        padding: 2rem;
    }
}

@keyframes fadeInUp {
    from {
        opacity: 0;
        transform: translateY(30px);
    }
    to {
        opacity: 1;
        transform: translateY(0);
    }
}`

const DefaultJS = `console.log('MojoCode App loaded successfully!');

document.addEventListener('DOMContentLoaded', function() {
    console.log('DOM content loaded');
    initializeApp();
});

function initializeApp() {
    document.documentElement.style.scrollBehavior = 'smooth';

    const hero = document.querySelector('.hero');
    if (hero) {
        hero.style.opacity = '0';
        hero.style.transform = 'translateY(20px)';

        setTimeout(function() {
            hero.style.transition = 'all 0.8s ease-out';
            hero.style.opacity = '1';
            hero.style.transform = 'translateY(0)';
        }, 100);
    }
}

function handleCTAClick(event) {
    const button = event.target;
    button.style.transform = 'scale(0.95)';
    setTimeout(function() {
        button.style.transform = '';
    }, 150);
    showNotification('Welcome to your new app!');
}

function showNotification(message) {
    const notification = document.createElement('div');
    notification.textContent = message;
    notification.style.cssText = 'position: fixed; top: 20px; right: 20px; padding: 1rem 2rem;' +
        'background: #10b981; color: white; border-radius: 8px; z-index: 1000;' +
        'opacity: 0; transition: opacity 0.3s ease-out;';
    document.body.appendChild(notification);

    setTimeout(function() {
        notification.style.opacity = '1';
    }, 100);

    setTimeout(function() {
        notification.style.opacity = '0';
        setTimeout(function() {
            notification.remove();
        }, 300);
    }, 3000);
}`
