package email

import "html/template"

var (
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationTemplate))
	notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))
)

// confirmationTemplate is the acknowledgement sent to the submitter
const confirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Gracias por tu mensaje</title>
    <style>
        body { background: #221F20; font-family: Georgia, "Times New Roman", serif; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px 48px 48px; background: #F2EDEB; }
        h1 { color: #1d1c1d; font-size: 28px; margin: 40px 0; }
        .greeting { color: #1d1c1d; font-size: 18px; font-weight: 600; }
        p { color: #484848; font-size: 16px; line-height: 26px; }
        .info-box { background: #f0f4f8; border-left: 4px solid #F4320B; padding: 16px; margin: 24px 0; }
        .signature-name { color: #1d1c1d; font-size: 18px; font-weight: 600; margin: 0; }
        .signature-title { color: #F4320B; font-size: 14px; margin: 4px 0 0; }
        .footer { color: #8898aa; font-size: 12px; margin-top: 32px; }
        hr { border: none; border-top: 1px solid #221F20; margin: 20px 0; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Gracias por tu mensaje</h1>
        <p class="greeting">Hola {{.Name}},</p>
        <p>Gracias por ponerte en contacto conmigo. He recibido tu mensaje y lo
        revisaré tan pronto como sea posible.</p>
        <div class="info-box">
            <p>Me esfuerzo por responder todos los mensajes en un plazo de 24-48 horas.
            Si tu consulta es urgente, no dudes en escribirme directamente a mi email.</p>
        </div>
        <p>Mientras tanto, siéntete libre de explorar mi portfolio y conocer más
        sobre mis proyectos y experiencia.</p>
        <hr>
        <p>Saludos,</p>
        <p class="signature-name">Jose Centeno</p>
        <p class="signature-title">Frontend Developer</p>
        <hr>
        <p class="footer">Este es un mensaje automático. Por favor, no respondas a este correo.</p>
    </div>
</body>
</html>`

// notificationTemplate is the alert sent to the site owner
const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Nuevo mensaje desde el portfolio</title>
    <style>
        body { background: #221F20; font-family: Georgia, "Times New Roman", serif; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px 48px 48px; background: #F2EDEB; }
        h1 { color: #1d1c1d; font-size: 28px; margin: 40px 0; }
        p { color: #484848; font-size: 16px; line-height: 26px; }
        .label { color: #1d1c1d; font-size: 14px; font-weight: 600; margin-bottom: 4px; }
        .value { color: #484848; font-size: 16px; margin-top: 0; }
        .message-box { background: white; border-left: 4px solid #F4320B; padding: 15px; margin-top: 10px; }
        .footer { color: #8898aa; font-size: 12px; margin-top: 32px; }
        hr { border: none; border-top: 1px solid #221F20; margin: 20px 0; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Nuevo mensaje desde el portfolio</h1>
        <p>Has recibido un nuevo mensaje a través del formulario de contacto de tu portfolio.</p>
        <hr>
        <p class="label">Nombre:</p>
        <p class="value">{{.Name}}</p>
        <p class="label">Email:</p>
        <p class="value">{{.Email}}</p>
        <p class="label">Mensaje:</p>
        <div class="message-box">{{.Message}}</div>
        <hr>
        <p class="footer">Puedes responder directamente a este correo para contactar con {{.Name}}.</p>
    </div>
</body>
</html>`
