package helper

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"eventku_backend/internals/configs"
)

// SendRegistrationEmail mengirim email konfirmasi + lampiran QR ke pengunjung.
// Best-effort: registrasi adalah source of truth, kegagalan email hanya
// dicatat di log dan TIDAK menggagalkan registrasi.
func SendRegistrationEmail(toEmail, name, eventName string, qrPNG []byte) {
	go func() {
		if configs.SMTPHost == "" {
			log.Printf("[INFO] SMTP nonaktif, lewati email QR untuk %s", toEmail)
			return
		}

		port, err := strconv.Atoi(configs.SMTPPort)
		if err != nil {
			port = 587
		}

		m := gomail.NewMessage()
		m.SetHeader("From", configs.SMTPSender)
		m.SetHeader("To", toEmail)
		m.SetHeader("Subject", fmt.Sprintf("Tiket %s", eventName))
		m.SetBody("text/html", fmt.Sprintf(
			"<p>Halo %s,</p><p>Pendaftaran kamu untuk <b>%s</b> berhasil. Tunjukkan QR terlampir di kiosk check-in ya.</p>",
			name, eventName,
		))
		m.Attach("qr-checkin.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(qrPNG))
			return err
		}))

		d := gomail.NewDialer(configs.SMTPHost, port, configs.SMTPUser, configs.SMTPPassword)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("[ERROR] Gagal kirim email QR ke %s: %v", toEmail, err)
			return
		}
		log.Printf("[INFO] Email QR terkirim ke %s", toEmail)
	}()
}
